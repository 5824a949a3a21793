package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/verusrpc/vrscrpc/bchain"
	"github.com/verusrpc/vrscrpc/bchain/coins"
	"github.com/verusrpc/vrscrpc/bchain/coins/vrsc"
	"github.com/verusrpc/vrscrpc/common"
)

var (
	configFile = flag.String("blockchaincfg", "", "path to blockchain RPC service configuration json file, replaces the rpc flags")

	chainName  = flag.String("chain", vrsc.VRSCName, "VRSC, vrsctest or hex currency id of a PBaaS chain")
	testnet    = flag.Bool("testnet", false, "use testnet installation of the chain")
	rpcURL     = flag.String("rpcurl", "", "url of the daemon RPC service, empty reads credentials from the daemon conf file")
	rpcUser    = flag.String("rpcuser", "", "rpc username")
	rpcPass    = flag.String("rpcpass", "", "rpc password")
	rpcTimeout = flag.Uint("rpctimeout", 25, "rpc timeout in seconds")

	prometheusBinding = flag.String("prometheus", "", "address to expose prometheus metrics on, e.g. :9090")
	watch             = flag.Bool("watch", false, "print new block and transaction notifications of the daemon ZeroMQ")
	mqBinding         = flag.String("mqbinding", "", "ZeroMQ endpoint of the daemon, empty means zmqpubhashblock of the daemon conf file")

	printVersion = flag.Bool("version", false, "print version and exit")
)

const (
	mqShutdownTimeout  = 5 * time.Second
	tipRefreshPeriod   = time.Minute
	tipRefreshDebounce = time.Second
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <method> [params...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if *printVersion {
		fmt.Println(common.GetVersionInfo())
		return
	}

	if err := run(); err != nil {
		glog.Error(err)
		fmt.Fprintln(os.Stderr, "error:", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run() error {
	var (
		config *common.Config
		raw    json.RawMessage
		err    error
	)
	if *configFile != "" {
		if config, raw, err = common.GetConfig(*configFile); err != nil {
			return err
		}
	}
	chainLabel := *chainName
	if config != nil && config.Chain != "" {
		chainLabel = config.Chain
	}

	var metrics *common.Metrics
	if *prometheusBinding != "" {
		reg := prometheus.NewRegistry()
		if metrics, err = common.GetMetrics(chainLabel, reg); err != nil {
			return errors.Annotatef(err, "GetMetrics")
		}
		go serveMetrics(*prometheusBinding, reg)
	}

	client, err := newClient(config, raw, metrics)
	if err != nil {
		return err
	}

	if *watch {
		return watchNotifications(client, config, metrics)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		return errors.New("missing method")
	}
	res, err := client.RawCall(flag.Arg(0), cliParams(flag.Args()[1:])...)
	if err != nil {
		if re, ok := bchain.DaemonError(err); ok {
			return errors.Errorf("daemon error code %d: %s", re.Code, re.Message)
		}
		return err
	}
	fmt.Println(formatResult(res))
	return nil
}

func newClient(config *common.Config, raw json.RawMessage, metrics *common.Metrics) (*vrsc.VerusRPC, error) {
	if config != nil {
		coin := config.CoinName
		if coin == "" {
			coin = "vrsc"
		}
		return coins.NewBlockChain(coin, raw, metrics)
	}
	chain, err := vrsc.ParseChainIdentity(*chainName, *testnet)
	if err != nil {
		return nil, err
	}
	auth := vrsc.UserPassAuth(*rpcURL, *rpcUser, *rpcPass)
	return vrsc.NewClient(chain, auth, time.Duration(*rpcTimeout)*time.Second, metrics)
}

// cliParams passes params which are valid JSON as JSON values, others as strings
func cliParams(args []string) []interface{} {
	params := make([]interface{}, len(args))
	for i, a := range args {
		if json.Valid([]byte(a)) {
			params[i] = json.RawMessage(a)
		} else {
			params[i] = a
		}
	}
	return params
}

func formatResult(res json.RawMessage) string {
	var s string
	// strings are printed without quotes like the daemon cli does
	if err := json.Unmarshal(res, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, res, "", "  "); err != nil {
		return string(res)
	}
	return buf.String()
}

func serveMetrics(binding string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	glog.Info("metrics: listening on ", binding)
	if err := http.ListenAndServe(binding, mux); err != nil {
		glog.Error("metrics: ", err)
	}
}

func mqEndpoint(client *vrsc.VerusRPC, config *common.Config) (string, error) {
	if *mqBinding != "" {
		return *mqBinding, nil
	}
	if config != nil && config.MessageQueueBinding != "" {
		return config.MessageQueueBinding, nil
	}
	conf, err := vrsc.NewResolver(nil).ReadConfFile(client.Chain)
	if err != nil {
		return "", errors.Annotatef(err, "ZeroMQ endpoint")
	}
	if b, ok := conf.Get("zmqpubhashblock"); ok {
		return b, nil
	}
	return "", bchain.NewError(bchain.KindInvalidConfigFile, errors.NotFoundf("%v setting zmqpubhashblock", client.Chain))
}

func watchNotifications(client *vrsc.VerusRPC, config *common.Config, metrics *common.Metrics) error {
	binding, err := mqEndpoint(client, config)
	if err != nil {
		return err
	}
	state := common.NewWatchState(client.Chain.Name())
	chanNewBlock := make(chan struct{}, 1)
	mq, err := bchain.NewMQ(binding, func(n bchain.Notification) {
		state.AddNotification(n.Type.String())
		fmt.Printf("%v %v %d\n", n.Type, n.Hash, n.Sequence)
		if n.Type == bchain.NotificationNewBlock {
			// do not block the MQ loop, one pending signal is enough
			select {
			case chanNewBlock <- struct{}{}:
			default:
			}
		}
	}, metrics)
	if err != nil {
		return errors.Annotatef(err, "NewMQ %v", binding)
	}
	refreshTip(client, state)
	go common.TickAndDebounce(tipRefreshPeriod, tipRefreshDebounce, chanNewBlock, func() { refreshTip(client, state) })

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	<-stop
	common.SetInShutdown()
	ctx, cancel := context.WithTimeout(context.Background(), mqShutdownTimeout)
	defer cancel()
	err = mq.Shutdown(ctx)
	if err == nil {
		// the MQ loop has finished, nothing sends to chanNewBlock anymore
		close(chanNewBlock)
	}
	if b, perr := state.Pack(); perr == nil {
		fmt.Println(string(b))
	}
	return err
}

// refreshTip stores the tip and mempool size of the daemon to state
func refreshTip(client *vrsc.VerusRPC, state *common.WatchState) {
	info, err := client.GetBlockchainInfo()
	if err != nil {
		glog.Error("GetBlockchainInfo ", err)
		return
	}
	state.UpdateBestBlock(info.Blocks, info.BestBlockHash.String())
	mi, err := client.GetMempoolInfo()
	if err != nil {
		glog.Error("GetMempoolInfo ", err)
		return
	}
	state.SetMempoolSize(mi.Size)
	glog.Info("tip ", info.Blocks, " ", info.BestBlockHash, ", mempool ", mi.Size)
}
