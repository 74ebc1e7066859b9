package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/0xPolygon/zk-smt/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// rawMark flags a reference that was written without quotes, so it is not valid TOML
	// until it is resolved
	rawMark = ":raw"
)

var (
	ErrCycleVars                 = errors.New("cycle vars")
	ErrMissingVars               = errors.New("missing vars")
	ErrUnsupportedConfigFileType = errors.New("unsupported config file type")

	bareVarRe   = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	quotedVarRe = regexp.MustCompile(`=\s*"\{\{([^}:]+)` + rawMark + `\}\}"`)
	rawMarkRe   = regexp.MustCompile(`\{\{([^}:]+)` + rawMark + `\}\}`)
)

// FileData is one layer of configuration, later layers override earlier ones
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges TOML layers and substitutes every {{Key}} reference with the value of
// Key in the merged result, or with the environment variable <EnvPrefix>_<Key> when it is set
type ConfigRender struct {
	FilesData []FileData
	// LookupEnvFunc resolves environment variables, typically os.LookupEnv
	LookupEnvFunc func(key string) (string, bool)
	EnvPrefix     string
}

func NewConfigRender(filesData []FileData, envPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:     filesData,
		LookupEnvFunc: os.LookupEnv,
		EnvPrefix:     envPrefix,
	}
}

// Render merges all the layers and resolves the references of the result
func (c *ConfigRender) Render() (string, error) {
	merged, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(merged)
}

// Merge loads every layer on top of the previous ones. References are kept unresolved.
func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range c.FilesData {
		content := quoteBareVars(data.Content)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err: %v", data.Name, err)
			return "", fmt.Errorf("fail to load %s as toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return unquoteBareVars(string(marshaled)), nil
}

// ResolveVars substitutes references until none is left. A reference that can not be
// resolved fails with ErrMissingVars, references that only resolve to each other fail with
// ErrCycleVars.
func (c *ConfigRender) ResolveVars(data string) (string, error) {
	pending := GetVars(data)
	for len(pending) > 0 {
		values, err := definedValues(data)
		if err != nil {
			return "", err
		}
		next := c.substitute(data, values)
		if missing := c.missingVars(pending, values); len(missing) > 0 {
			return next, fmt.Errorf("missing vars: %v. Err: %w", missing, ErrMissingVars)
		}
		nextPending := GetVars(next)
		if len(nextPending) >= len(pending) {
			log.Debugf("unresolved references after substitution: %v", nextPending)
			return data, fmt.Errorf("not resolved cycle vars: %v. Err: %w", nextPending, ErrCycleVars)
		}
		data, pending = next, nextPending
	}
	return data, nil
}

func (c *ConfigRender) substitute(data string, values map[string]interface{}) string {
	out := fasttemplate.ExecuteFuncString(data, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		if v, ok := c.lookupEnv(tag); ok {
			return w.Write([]byte(v))
		}
		if v, ok := values[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
	return rawMarkRe.ReplaceAllString(out, startTag+"${1}"+endTag)
}

func (c *ConfigRender) missingVars(vars []string, values map[string]interface{}) []string {
	var missing []string
	for _, v := range vars {
		if _, ok := values[v]; ok {
			continue
		}
		if _, ok := c.lookupEnv(v); ok {
			continue
		}
		if !contains(missing, v) {
			missing = append(missing, v)
		}
	}
	return missing
}

func (c *ConfigRender) lookupEnv(tag string) (string, bool) {
	return c.LookupEnvFunc(c.EnvPrefix + "_" + strings.ReplaceAll(tag, ".", "_"))
}

// GetVars returns every reference found in data, in order of appearance
func GetVars(data string) []string {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return 0, nil
	})
	return vars
}

// definedValues returns the flattened keys of data, references still unresolved
func definedValues(data string) (map[string]interface{}, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(quoteBareVars(data))), toml.Parser()); err != nil {
		return nil, fmt.Errorf("error parsing partially resolved config. Err: %w", err)
	}
	return k.All(), nil
}

// quoteBareVars turns A = {{B}} into the valid TOML A = "{{B:raw}}"
func quoteBareVars(data string) string {
	return bareVarRe.ReplaceAllString(data, `= "`+startTag+"${1}"+rawMark+endTag+`"`)
}

func unquoteBareVars(data string) string {
	return quotedVarRe.ReplaceAllString(data, "= "+startTag+"${1}"+endTag)
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
