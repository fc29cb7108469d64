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
	"fmt"
	"reflect"
	"strconv"
)

// MigrationResult represents a single field migration from one version to another
type MigrationResult struct {
	FieldName              string
	OldVersion, NewVersion uint32
	OldValue, NewValue     any
}

// migrate walks cfg up to the latest version. A field whose value still equals
// the default of the version being left takes the default of the next version.
func migrate(cfg Local) (newCfg Local, migrations []MigrationResult, err error) {
	newCfg = cfg
	originalVersion := cfg.Version
	latestConfigVersion := getLatestConfigVersion()

	if cfg.Version > latestConfigVersion {
		err = fmt.Errorf("unexpected config version: %d", cfg.Version)
		return
	}

	// Track which fields were migrated during this entire process
	migrationResults := make(map[string]MigrationResult)

	for newCfg.Version < latestConfigVersion {
		defaultCurrentConfig := GetVersionedDefaultLocalConfig(newCfg.Version)
		localType := reflect.TypeOf(Local{})
		nextVersion := newCfg.Version + 1
		for fieldNum := 0; fieldNum < localType.NumField(); fieldNum++ {
			field := localType.Field(fieldNum)
			nextVersionDefaultValue, hasTag := field.Tag.Lookup(fmt.Sprintf("version[%d]", nextVersion))
			if !hasTag {
				continue
			}
			current := reflect.ValueOf(&newCfg).Elem().FieldByName(field.Name)
			previousDefault := reflect.ValueOf(&defaultCurrentConfig).Elem().FieldByName(field.Name)
			if field.Name != "Version" && !current.Equal(previousDefault) {
				continue
			}
			oldValue := previousDefault.Interface()
			if err = setFieldFromTag(current, field.Name, nextVersionDefaultValue); err != nil {
				return
			}
			if m, exists := migrationResults[field.Name]; exists {
				m.NewValue = current.Interface()
				m.NewVersion = nextVersion
				migrationResults[field.Name] = m
			} else {
				migrationResults[field.Name] = MigrationResult{FieldName: field.Name, OldVersion: originalVersion, NewVersion: nextVersion, OldValue: oldValue, NewValue: current.Interface()}
			}
		}
	}

	// Only return migrations where the value actually changed
	for _, m := range migrationResults {
		if m.FieldName != "Version" && m.OldValue != m.NewValue {
			migrations = append(migrations, m)
		}
	}

	return
}

func getLatestConfigVersion() uint32 {
	localType := reflect.TypeOf(Local{})
	versionField, found := localType.FieldByName("Version")
	if !found {
		return 0
	}
	version := uint32(0)
	for {
		_, hasTag := versionField.Tag.Lookup(fmt.Sprintf("version[%d]", version+1))
		if !hasTag {
			return version
		}
		version++
	}
}

// GetVersionedDefaultLocalConfig returns the default config for the given version.
func GetVersionedDefaultLocalConfig(version uint32) (local Local) {
	if version > 0 {
		local = GetVersionedDefaultLocalConfig(version - 1)
	}
	// apply version specific changes.
	localType := reflect.TypeOf(Local{})
	for fieldNum := 0; fieldNum < localType.NumField(); fieldNum++ {
		field := localType.Field(fieldNum)
		versionDefaultValue, hasTag := field.Tag.Lookup(fmt.Sprintf("version[%d]", version))
		if !hasTag {
			continue
		}
		err := setFieldFromTag(reflect.ValueOf(&local).Elem().FieldByName(field.Name), field.Name, versionDefaultValue)
		if err != nil {
			panic(err)
		}
	}
	return
}

func setFieldFromTag(v reflect.Value, name string, tagValue string) error {
	switch v.Kind() {
	case reflect.Bool:
		boolVal, err := strconv.ParseBool(tagValue)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		v.SetBool(boolVal)
	case reflect.Uint32:
		uintVal, err := strconv.ParseUint(tagValue, 10, 32)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		v.SetUint(uintVal)
	case reflect.String:
		v.SetString(tagValue)
	default:
		return fmt.Errorf("unsupported data type (%s) encountered when reflecting on config.Local datatype %s", v.Kind(), name)
	}
	return nil
}
