package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultLogLevel = "info"

	defaultDeliveryFeeBase  = 2.0
	defaultDeliveryFeePerKm = 0.5

	defaultSubscriberBuffer = 64
	defaultWSWriteTimeout   = 5 * time.Second
	defaultWSClientQPS      = 10
	defaultWSClientBurst    = 20

	defaultRedisEventsChannel = "foodhub.events"

	defaultRebroadcastLimit = 100

	defaultPaymentConfirmedRetryMaxElapsed = 30 * time.Second
)

type (
	Tasks struct {
		ReadyOrdersRebroadcastInterval time.Duration
		ReadyOrdersRebroadcastAge      time.Duration // заказ ждет курьера дольше этого
		ReadyOrdersRebroadcastLimit    int
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Log struct {
		Level string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr          string
		Password      string
		DB            int
		EventsChannel string
	}

	Fee struct {
		Base  float64
		PerKm float64
	}

	Realtime struct {
		SubscriberBuffer int
		WriteTimeout     time.Duration
		ClientQPS        int // лимит входящих кадров на одно websocket соединение
		ClientBurst      int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PaymentConfirmed PaymentConfirmed
	}

	PaymentConfirmed struct {
		ProcessTimeout  time.Duration // на одну попытку
		RetryMaxElapsed time.Duration // после этого сообщение остается незакоммиченным
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Log      Log
		Database Database
		Redis    Redis
		Fee      Fee
		Realtime Realtime
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	rebroadcastInterval, err := osGetEnvDuration("BACKGROUND_READY_ORDERS_REBROADCAST_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rebroadcastAge, err := osGetEnvDuration("BACKGROUND_READY_ORDERS_REBROADCAST_AGE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rebroadcastLimit, err := osGetInt("BACKGROUND_READY_ORDERS_REBROADCAST_LIMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentConfirmedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PAYMENT_CONFIRMED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentConfirmedRetryMaxElapsed, err := osGetEnvDuration("KAFKA_HANDLER_PAYMENT_CONFIRMED_RETRY_MAX_ELAPSED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	feeBase, err := osGetFloat("DELIVERY_FEE_BASE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	feePerKm, err := osGetFloat("DELIVERY_FEE_PER_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	subscriberBuffer, err := osGetInt("WS_SUBSCRIBER_BUFFER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	wsWriteTimeout, err := osGetEnvDuration("WS_WRITE_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	wsClientQPS, err := osGetInt("WS_CLIENT_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	wsClientBurst, err := osGetInt("WS_CLIENT_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := &Config{
		Tasks: Tasks{
			ReadyOrdersRebroadcastInterval: rebroadcastInterval,
			ReadyOrdersRebroadcastAge:      rebroadcastAge,
			ReadyOrdersRebroadcastLimit:    rebroadcastLimit,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:          os.Getenv("REDIS_ADDR"),
			Password:      os.Getenv("REDIS_PASSWORD"),
			DB:            redisDB,
			EventsChannel: os.Getenv("REDIS_EVENTS_CHANNEL"),
		},
		Fee: Fee{
			Base:  feeBase,
			PerKm: feePerKm,
		},
		Realtime: Realtime{
			SubscriberBuffer: subscriberBuffer,
			WriteTimeout:     wsWriteTimeout,
			ClientQPS:        wsClientQPS,
			ClientBurst:      wsClientBurst,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PaymentConfirmed: PaymentConfirmed{
					ProcessTimeout:  paymentConfirmedTimeout,
					RetryMaxElapsed: paymentConfirmedRetryMaxElapsed,
				},
			},
		},
	}
	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults заполняет необязательные параметры, не заданные в окружении.
func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Redis.EventsChannel == "" {
		cfg.Redis.EventsChannel = defaultRedisEventsChannel
	}
	if cfg.Fee.Base == 0 {
		cfg.Fee.Base = defaultDeliveryFeeBase
	}
	if cfg.Fee.PerKm == 0 {
		cfg.Fee.PerKm = defaultDeliveryFeePerKm
	}
	if cfg.Realtime.SubscriberBuffer == 0 {
		cfg.Realtime.SubscriberBuffer = defaultSubscriberBuffer
	}
	if cfg.Realtime.WriteTimeout == 0 {
		cfg.Realtime.WriteTimeout = defaultWSWriteTimeout
	}
	if cfg.Realtime.ClientQPS == 0 {
		cfg.Realtime.ClientQPS = defaultWSClientQPS
	}
	if cfg.Realtime.ClientBurst == 0 {
		cfg.Realtime.ClientBurst = defaultWSClientBurst
	}
	if cfg.Tasks.ReadyOrdersRebroadcastLimit == 0 {
		cfg.Tasks.ReadyOrdersRebroadcastLimit = defaultRebroadcastLimit
	}
	if cfg.Kafka.Handlers.PaymentConfirmed.RetryMaxElapsed == 0 {
		cfg.Kafka.Handlers.PaymentConfirmed.RetryMaxElapsed = defaultPaymentConfirmedRetryMaxElapsed
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	if cfg.Redis.DB < 0 {
		return errors.New("REDIS_DB must not be negative")
	}

	if cfg.Fee.Base < 0 || cfg.Fee.PerKm < 0 {
		return errors.New("DELIVERY_FEE_BASE and DELIVERY_FEE_PER_KM must not be negative")
	}

	if cfg.Realtime.SubscriberBuffer < 0 {
		return errors.New("WS_SUBSCRIBER_BUFFER must not be negative")
	}

	if cfg.Tasks.ReadyOrdersRebroadcastInterval == time.Duration(0) {
		return errors.New("BACKGROUND_READY_ORDERS_REBROADCAST_INTERVAL is required")
	}
	if cfg.Tasks.ReadyOrdersRebroadcastAge == time.Duration(0) {
		return errors.New("BACKGROUND_READY_ORDERS_REBROADCAST_AGE is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.PaymentConfirmed.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PAYMENT_CONFIRMED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
