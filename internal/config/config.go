/*
Package config holds the configuration of the npchunk commands.

Configuration is read from a YAML file and from environment variables.
Priority is ENV > YAML > defaults. Command line flags take precedence over
all of them.
*/
package config

// Config is the root configuration.
type Config struct {
	Grammar GrammarConfig `yaml:"grammar"`
	Parser  ParserConfig  `yaml:"parser"`
	Mining  MiningConfig  `yaml:"mining"`
	Server  ServerConfig  `yaml:"server"`
	Trace   TraceConfig   `yaml:"trace"`
}

// GrammarConfig selects the grammar. An empty path selects the built-in grammar.
type GrammarConfig struct {
	Path  string `yaml:"path"  env:"NPCHUNK_GRAMMAR"`
	Start string `yaml:"start" env:"NPCHUNK_START" env-default:"S"`
}

// ParserConfig holds parser settings.
type ParserConfig struct {
	MaxTrees int `yaml:"max_trees" env:"NPCHUNK_MAX_TREES" env-default:"1000"`
}

// MiningConfig holds settings for n-gram mining.
type MiningConfig struct {
	Corpus  string `yaml:"corpus"  env:"NPCHUNK_CORPUS"  env-default:"sentences"`
	MinN    int    `yaml:"min_n"   env:"NPCHUNK_MIN_N"   env-default:"2"`
	MaxN    int    `yaml:"max_n"   env:"NPCHUNK_MAX_N"   env-default:"5"`
	Top     int    `yaml:"top"     env:"NPCHUNK_TOP"     env-default:"10"`
	Unknown string `yaml:"unknown" env:"NPCHUNK_UNKNOWN" env-default:"?"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr           string   `yaml:"addr"            env:"NPCHUNK_ADDR"            env-default:":8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"NPCHUNK_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
	MaxSentences   int      `yaml:"max_sentences"   env:"NPCHUNK_MAX_SENTENCES"   env-default:"1000"`
	MaxNgram       int      `yaml:"max_ngram"       env:"NPCHUNK_MAX_NGRAM"       env-default:"10"`
}

// TraceConfig holds trace levels.
type TraceConfig struct {
	Level string `yaml:"level" env:"NPCHUNK_TRACE" env-default:"Error"`
}
