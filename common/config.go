package common

import (
	"encoding/json"
	"os"

	"github.com/juju/errors"
)

// Config struct
type Config struct {
	CoinName            string `json:"coin_name"`
	Chain               string `json:"chain"`
	Testnet             bool   `json:"testnet"`
	RPCURL              string `json:"rpc_url"`
	RPCUser             string `json:"rpc_user"`
	RPCPass             string `json:"rpc_pass"`
	RPCTimeout          int    `json:"rpc_timeout"`
	MessageQueueBinding string `json:"message_queue_binding"`
}

// GetConfig loads and parses the config file, the file content is returned for the coin constructors
func GetConfig(configFile string) (*Config, json.RawMessage, error) {
	if configFile == "" {
		return nil, nil, errors.New("Missing blockchaincfg configuration parameter")
	}

	configFileContent, err := os.ReadFile(configFile)
	if err != nil {
		return nil, nil, errors.Errorf("Error reading file %v, %v", configFile, err)
	}

	cn, err := ParseConfig(configFileContent)
	if err != nil {
		return nil, nil, err
	}
	return cn, configFileContent, nil
}

// ParseConfig parses json configuration
func ParseConfig(data json.RawMessage) (*Config, error) {
	var cn Config
	if err := json.Unmarshal(data, &cn); err != nil {
		return nil, errors.Annotatef(err, "Error parsing config file ")
	}
	return &cn, nil
}
