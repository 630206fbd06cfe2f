// Package config manages user-level settings stored at ~/.mspyl/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the uv executable override and the per-command timeout, plus schema
// validation of the config file itself.
package config
