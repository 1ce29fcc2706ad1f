package config

type (
	InternalConfig struct {
		App      App
		JWT      JWT
		Minio    AppMinio
		RabbitMQ AppRabbitMQ
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
		Minio      Minio
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		DefaultPlan                string
		AutoMigrate                bool
		MaxRequests                int
		AuthMaxRequestsPerMinute   int
		AuthBlockTimeInMinutes     int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		SlotGranularityInMinutes   int
		SessionExpTimeInHour       int
	}

	JWT struct {
		Secret string
	}

	AppMinio struct {
		AvatarBucketName string
		PublicBaseURL    string
	}

	AppRabbitMQ struct {
		AppointmentQueue string
	}

	PostgresDB struct {
		Host     string
		Port     string
		DBName   string
		Username string
		Password string
		SSLMode  string
		MaxConns int
		MinConns int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
)
