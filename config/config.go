// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/algorand/go-algorand-abi/crypto"
	"github.com/algorand/go-algorand-abi/logging"
	"github.com/algorand/go-algorand-abi/protocol"
)

// Local holds the per-user configuration settings of abitool.
// !!! WARNING !!!
//
// These versioned struct tags need to be maintained CAREFULLY and treated
// like UNIVERSAL CONSTANTS - they should not be modified once committed.
//
// New fields may be added to the Local struct, along with a version tag
// denoting a new version.
//
// !!! WARNING !!!
type Local struct {
	// Version tracks the current version of the defaults so we can migrate old -> new
	// This is specifically important whenever we decide to change the default value
	// for an existing parameter. This field tag must be updated any time we add a new version.
	Version uint32 `version[0]:"0" version[1]:"1"`

	// BaseLoggerDebugLevel specifies the logging level for abitool (0 = Panic, 1 = Fatal, 2 = Error, 3 = Warning, 4 = Info, 5 = Debug)
	BaseLoggerDebugLevel uint32 `version[0]:"3"`

	// LogJSONFormat switches the log output from text to JSON lines.
	LogJSONFormat bool `version[0]:"false"`

	// IndentJSONOutput pretty prints method, interface and contract JSON written by abitool.
	IndentJSONOutput bool `version[0]:"false" version[1]:"true"`

	// DigestHashType is the hash function used by `method digest` when none is given (sha512_256, sumhash or sha256).
	DigestHashType string `version[0]:"sha512_256"`
}

// ConfigFilename is the name of the file within the config dir holding the Local settings.
const ConfigFilename = "abitool.json"

// defaultConfigDirName is the config dir created under the user's home directory.
const defaultConfigDirName = ".abitool"

var defaultLocal = GetVersionedDefaultLocalConfig(getLatestConfigVersion())

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

// LoadConfigFromDisk returns a Local config structure based on merging the defaults
// with settings loaded from the config file in the custom dir. A missing config
// file is not an error: the defaults are returned.
func LoadConfigFromDisk(custom string) (c Local, err error) {
	return loadConfigFromFile(filepath.Join(custom, ConfigFilename))
}

func loadConfigFromFile(configFile string) (c Local, err error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultLocal, nil
		}
		return defaultLocal, err
	}

	c = defaultLocal
	c.Version = 0 // Reset to 0 so we get the version from the loaded file.
	if err = protocol.DecodeJSONStrict(data, &c); err != nil {
		return defaultLocal, fmt.Errorf("cannot decode %s: %w", configFile, err)
	}

	// Migrate in case defaults were changed
	// If a config file does not have version, it is assumed to be zero.
	c, migrations, err := migrate(c)
	if err != nil {
		return defaultLocal, err
	}
	for _, m := range migrations {
		logging.Base().Infof("config %s: %s migrated from %v (v%d) to %v (v%d)",
			configFile, m.FieldName, m.OldValue, m.OldVersion, m.NewValue, m.NewVersion)
	}
	return c, c.Validate()
}

// Validate checks the settings that are restricted to a fixed set of values.
func (cfg Local) Validate() error {
	if cfg.BaseLoggerDebugLevel > uint32(logging.Debug) {
		return fmt.Errorf("invalid BaseLoggerDebugLevel %d", cfg.BaseLoggerDebugLevel)
	}
	if _, err := crypto.UnmarshalHashType(cfg.DigestHashType); err != nil {
		return fmt.Errorf("invalid DigestHashType: %w", err)
	}
	return nil
}

// DigestHash returns the configured digest hash type.
func (cfg Local) DigestHash() (crypto.HashType, error) {
	return crypto.UnmarshalHashType(cfg.DigestHashType)
}

// ApplyLogging configures log according to the logging settings.
func (cfg Local) ApplyLogging(log logging.Logger) {
	log.SetLevel(logging.Level(cfg.BaseLoggerDebugLevel))
	if cfg.LogJSONFormat {
		log.SetJSONFormatter()
	}
}

// SaveToDisk writes the Local settings into a root/ConfigFilename file
func (cfg Local) SaveToDisk(root string) error {
	configpath := filepath.Join(root, ConfigFilename)
	filename := os.ExpandEnv(configpath)
	return cfg.SaveToFile(filename)
}

// SaveToFile saves the config to a specific filename, allowing overriding the default name
func (cfg Local) SaveToFile(filename string) error {
	return os.WriteFile(filename, protocol.EncodeJSONIndent(cfg), 0600)
}

// GetDefaultConfigDir retrieves the default directory for abitool config files.
// By default we store in ~/.abitool/.
func GetDefaultConfigDir() (string, error) {
	currentUser, err := user.Current()
	if err != nil {
		return "", err
	}
	if currentUser.HomeDir == "" {
		return "", errors.New("GetDefaultConfigDir fail - current user has no home directory")
	}
	return filepath.Join(currentUser.HomeDir, defaultConfigDirName), nil
}
