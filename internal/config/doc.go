// Package config loads the settings file.
//
// Settings are written in HCL:
//
//	engine {
//	  precision      = 3
//	  default_locale = "en"
//	}
//
//	log {
//	  level  = "info"
//	  format = "json"
//	}
//
//	metrics {
//	  textfile = "/var/lib/node_exporter/decisiongrid.prom"
//	}
//
// Every block and attribute is optional; omitted values keep their defaults.
package config
