package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Upload    Upload    `mapstructure:",squash"`
	Simulator Simulator `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Upload struct {
	// Limite do corpo da requisição de upload, em megabytes
	MaxSizeMB int64 `mapstructure:"upload_max_size_mb"`
	// Nome da aba da planilha; vazio usa a primeira aba
	SheetName string `mapstructure:"upload_sheet_name"`
	// Memoização de uploads idênticos (otimização, nunca requisito de correção)
	CacheEnabled    bool `mapstructure:"upload_cache_enabled"`
	CacheTTLMinutes int  `mapstructure:"upload_cache_ttl_minutes"`
}

type Simulator struct {
	// Imposto padrão aplicado quando a requisição não informa tax_pct (IVA chileno)
	DefaultTaxPct float64 `mapstructure:"simulator_default_tax_pct"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("UPLOAD_MAX_SIZE_MB", 10)
	viper.SetDefault("UPLOAD_SHEET_NAME", "")
	viper.SetDefault("UPLOAD_CACHE_ENABLED", true)
	viper.SetDefault("UPLOAD_CACHE_TTL_MINUTES", 10)

	viper.SetDefault("SIMULATOR_DEFAULT_TAX_PCT", 19.0)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
