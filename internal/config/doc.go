// Package config provides configuration parsing for reportdemo.
//
// The configuration is optional. When present it lives in reportdemo.json,
// reportdemo.yaml or reportdemo.yml in the working directory; without it the
// defaults below apply, and the plain command renders the report to the
// terminal.
//
// # Configuration File Structure
//
//	{
//	  "output": {
//	    "format": "terminal",
//	    "path": "",
//	    "pretty": false,
//	    "glamour": false
//	  },
//	  "server": {
//	    "host": "localhost",
//	    "port": 8501,
//	    "shutdownTimeout": "10s"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "reportdemo"
//	  },
//	  "tracing": {
//	    "enabled": true,
//	    "tracerName": "reportdemo"
//	  },
//	  "publish": {
//	    "bucket": "my-reports",
//	    "prefix": "demo/",
//	    "region": "us-east-1"
//	  },
//	  "page": {
//	    "lang": "es"
//	  }
//	}
//
// # Loading
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Address())
package config
