// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const (
	// DefaultConfigFileName is the name of the configuration file in SitenavHomeDir
	DefaultConfigFileName = "config"
	// SitenavHomeDir is the sitenav directory in the user home
	SitenavHomeDir = ".sitenav"
	// SitenavConfigEnv names the environment variable overriding the configuration file path
	SitenavConfigEnv = "SITENAVCONFIG"
)

// Loader loads the sitenav configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader loads the configuration file named by
// SITENAVCONFIG, or $HOME/.sitenav/config when the variable is not set
type DefaultConfigurationLoader struct{}

// Load implements Loader
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(SitenavConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", SitenavConfigEnv)
		}
		return load(configFilePath)
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}

	configFilePath := filepath.Join(userHomeDir, SitenavHomeDir, DefaultConfigFileName)
	return load(configFilePath)
}

func load(configFilePath string) (*Config, error) {
	if configFilePath == "" {
		return &Config{}, nil
	}
	stat, err := os.Stat(configFilePath)
	if errors.Is(err, os.ErrNotExist) {
		klog.V(2).Infof("configuration file %s not found, using defaults", configFilePath)
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configFilePath, err)
	}
	return config, nil
}
