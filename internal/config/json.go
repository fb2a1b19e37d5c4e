package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		LogPath string `json:"log_path"`
	} `json:"app,omitempty"`

	Chain struct {
		RPCAddress      string   `json:"rpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ReceiptTimeout  Duration `json:"receipt_timeout"`
		DeploymentsPath string   `json:"deployments_path"`
	} `json:"chain,omitempty"`

	IPFS struct {
		APIAddress     string   `json:"api_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"ipfs,omitempty"`

	Session struct {
		Path string   `json:"path"`
		TTL  Duration `json:"ttl"`
	} `json:"session,omitempty"`

	Admin struct {
		Addresses []string `json:"addresses"`
	} `json:"admin,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			LogPath: jsonCfg.App.LogPath,
		},
		Chain: Chain{
			RPCAddress:      jsonCfg.Chain.RPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Chain.RequestTimeout),
			ReceiptTimeout:  time.Duration(jsonCfg.Chain.ReceiptTimeout),
			DeploymentsPath: jsonCfg.Chain.DeploymentsPath,
		},
		IPFS: IPFS{
			APIAddress:     jsonCfg.IPFS.APIAddress,
			RequestTimeout: time.Duration(jsonCfg.IPFS.RequestTimeout),
		},
		Session: Session{
			Path: jsonCfg.Session.Path,
			TTL:  time.Duration(jsonCfg.Session.TTL),
		},
		Admin: Admin{
			Addresses: jsonCfg.Admin.Addresses,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
