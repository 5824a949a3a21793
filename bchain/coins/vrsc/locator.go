package vrsc

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/juju/errors"
	"github.com/spf13/afero"

	"github.com/verusrpc/vrscrpc/bchain"
)

// OSFamily groups operating systems sharing the installation layout
type OSFamily int

const (
	// UnsupportedOS has no known layout
	UnsupportedOS OSFamily = iota
	// LinuxFamily keeps data in dot directories in the home directory
	LinuxFamily
	// MacWindowsFamily keeps data in the application data directory
	MacWindowsFamily
)

func (f OSFamily) String() string {
	switch f {
	case LinuxFamily:
		return "linux"
	case MacWindowsFamily:
		return "mac/windows"
	}
	return "unsupported"
}

// OSFamilyOf maps GOOS value to OSFamily
func OSFamilyOf(goos string) OSFamily {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return LinuxFamily
	case "darwin", "windows":
		return MacWindowsFamily
	}
	return UnsupportedOS
}

// Locator finds the conf file of a local daemon installation
type Locator struct {
	Fs         afero.Fs
	GOOS       string
	HomeDir    func() (string, error)
	AppDataDir func() (string, error)
}

// NewLocator returns Locator of the running system
func NewLocator() *Locator {
	return &Locator{
		Fs:         afero.NewOsFs(),
		GOOS:       runtime.GOOS,
		HomeDir:    os.UserHomeDir,
		// roaming %AppData% on windows, where the daemon creates its data directory
		AppDataDir: os.UserConfigDir,
	}
}

// installation directory names: linux family, mac/windows family
var (
	rootDirs        = [2]string{".komodo", "Komodo"}
	pbaasTestDirs   = [2]string{".verustest", "VerusTest"}
	pbaasMainDirs   = [2]string{".verus", "Verus"}
	pbaasSubdirName = "pbaas"
)

// BaseDir returns the existing installation directory containing the chain directory
func (l *Locator) BaseDir(chain ChainIdentity) (string, error) {
	if chain.Kind == ChainPBaaS && chain.CurrencyID == "" {
		return "", bchain.NewError(bchain.KindInvalidArgument, errors.NotValidf("PBaaS chain without currency id"))
	}
	family := OSFamilyOf(l.GOOS)
	var i int
	var root func() (string, error)
	switch family {
	case LinuxFamily:
		i, root = 0, l.HomeDir
	case MacWindowsFamily:
		i, root = 1, l.AppDataDir
	default:
		return "", bchain.NewError(bchain.KindUnsupportedPlatform, errors.NotSupportedf("operating system %v", l.GOOS))
	}
	dir, err := root()
	if err != nil {
		return "", bchain.NewError(bchain.KindPathNotFound, errors.Annotate(err, "home directory"))
	}
	if dir == "" {
		return "", bchain.NewError(bchain.KindPathNotFound, errors.NotFoundf("home directory"))
	}
	switch {
	case chain.Kind != ChainPBaaS:
		dir = filepath.Join(dir, rootDirs[i])
	case chain.Testnet:
		dir = filepath.Join(dir, pbaasTestDirs[i], pbaasSubdirName)
	default:
		dir = filepath.Join(dir, pbaasMainDirs[i], pbaasSubdirName)
	}
	fi, err := l.Fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", bchain.NewError(bchain.KindPathNotFound, errors.NotFoundf("installation directory %v", dir))
		}
		return "", bchain.NewError(bchain.KindIO, errors.Annotatef(err, "installation directory %v", dir))
	}
	if !fi.IsDir() {
		return "", bchain.NewError(bchain.KindNotADirectory, errors.NotValidf("installation directory %v", dir))
	}
	return dir, nil
}

// ConfPath returns path of the existing conf file of the chain, <base>/<name>/<name>.conf
func (l *Locator) ConfPath(chain ChainIdentity) (string, error) {
	dir, err := l.BaseDir(chain)
	if err != nil {
		return "", err
	}
	name := chain.Name()
	path := filepath.Join(dir, name, name+".conf")
	if _, err := l.Fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", bchain.NewError(bchain.KindPathNotFound, errors.NotFoundf("conf file %v", path))
		}
		return "", bchain.NewError(bchain.KindIO, errors.Annotatef(err, "conf file %v", path))
	}
	return path, nil
}

// ReadConfFile returns contents of the conf file of the chain
func (l *Locator) ReadConfFile(chain ChainIdentity) (string, error) {
	path, err := l.ConfPath(chain)
	if err != nil {
		return "", err
	}
	b, err := afero.ReadFile(l.Fs, path)
	if err != nil {
		return "", bchain.NewError(bchain.KindIO, errors.Annotatef(err, "conf file %v", path))
	}
	return string(b), nil
}
