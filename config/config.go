package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/zk-smt/log"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagWitness is the flag for the witness file consumed by the offline commands
	FlagWitness = "witness"
	// FlagRPCURL is the flag to run the offline commands against a remote smt server
	FlagRPCURL = "rpc-url"

	EnvVarPrefix       = "ZKSMT"
	ConfigType         = "toml"
	SaveConfigFileName = "zksmt_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

/*
Config represents the configuration of the zk-smt node
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config

	// RPC is the config for the RPC server
	RPC jRPC.Config
}

// Load loads the configuration from the files given with --cfg
func Load(ctx *cli.Context) (*Config, error) {
	filesData, err := readFiles(ctx.StringSlice(FlagCfg))
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	return LoadFile(filesData, ctx.String(FlagSaveConfigPath))
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileContent := string(content)
		if ext := strings.TrimPrefix(filepath.Ext(file), "."); ext != ConfigType {
			fileContent, err = convertFileToToml(fileContent, ext)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, ext, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

// LoadFile renders the default values overridden by files and decodes the result. When
// saveConfigPath is set the rendered TOML is written there.
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+2)
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	renderedCfg, err := NewConfigRender(fileData, EnvVarPrefix).Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		if err := os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions); err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	return LoadFileFromString(renderedCfg, ConfigType)
}

// LoadFileFromString decodes an already rendered configuration. Environment variables
// prefixed with EnvVarPrefix override any key, ZKSMT_RPC_PORT overrides RPC.Port.
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(configType)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvVarPrefix)
	v.AutomaticEnv()
	if err := v.ReadConfig(bytes.NewBufferString(configFileData)); err != nil {
		return nil, err
	}

	cfg := &Config{}
	// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(",")))
	if err := v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, err
	}
	return cfg, nil
}
