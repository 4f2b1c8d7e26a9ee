package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"kotc/common"
	"kotc/phases"
	"kotc/util"

	"github.com/pelletier/go-toml"
)

// logLevels enumerates the accepted lowering log levels.
var logLevels = []string{"silent", "error", "warn", "verbose"}

// tomlProfile represents a lowering profile as it is encoded in TOML.
type tomlProfile struct {
	Name                   string `toml:"name"`
	KotcVersion            string `toml:"kotc-version"`
	LogLevel               string `toml:"log-level"`
	ProduceOuterThisFields bool   `toml:"produce-outer-this-fields"`
}

// Profile is the loaded and validated lowering profile.
type Profile struct {
	Name     string
	LogLevel string
	Opts     phases.Options
}

// defaultProfile is used when the profile directory carries no profile file.
func defaultProfile() *Profile {
	return &Profile{Name: "default", LogLevel: "verbose"}
}

// LoadProfile loads the lowering profile from the given directory, falling
// back to the defaults when no profile file exists there.
func LoadProfile(dir string) (*Profile, error) {
	path := filepath.Join(dir, common.KotcProfileFileName)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultProfile(), nil
		}

		return nil, fmt.Errorf("unable to open profile at `%s`: %s", path, err.Error())
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading profile at `%s`: %s", path, err.Error())
	}

	tomlProf := &tomlProfile{}
	if err := toml.Unmarshal(buff, tomlProf); err != nil {
		return nil, fmt.Errorf("error parsing profile at `%s`: %s", path, err.Error())
	}

	return validateProfile(tomlProf, path)
}

// validateProfile checks the profile contents and extracts the final profile.
func validateProfile(tomlProf *tomlProfile, path string) (*Profile, error) {
	prof := defaultProfile()

	if tomlProf.Name != "" {
		prof.Name = tomlProf.Name
	}

	if tomlProf.KotcVersion != "" && tomlProf.KotcVersion != common.KotcVersion {
		return nil, fmt.Errorf("profile `%s` targets kotc v%s but this is kotc v%s",
			prof.Name, tomlProf.KotcVersion, common.KotcVersion)
	}

	if tomlProf.LogLevel != "" {
		if !util.Contains(logLevels, tomlProf.LogLevel) {
			return nil, fmt.Errorf("profile at `%s` has unknown log level `%s`", path, tomlProf.LogLevel)
		}

		prof.LogLevel = tomlProf.LogLevel
	}

	prof.Opts.ProduceOuterThisFields = tomlProf.ProduceOuterThisFields

	return prof, nil
}
