package conf

// Recognized configuration keys.
const (
	KeyEnvironment    = "MYPROJECT_ENV"
	KeyDotenvPath     = "MYPROJECT_DOTENV_PATH"
	KeyLogMaxBytes    = "MYPROJECT_LOG_MAX_BYTES"
	KeyLogBackupCount = "MYPROJECT_LOG_BACKUP_COUNT"
	KeyLogLevel       = "MYPROJECT_LOG_LEVEL"
	KeyDebugEnvLoad   = "MYPROJECT_DEBUG_ENV_LOAD"
	KeyTestMode       = "MYPROJECT_TEST_MODE"
	KeyRootDir        = "MYPROJECT_ROOT_DIR"
)

// KeyPrefix is shared by every key the application reads.
const KeyPrefix = "MYPROJECT_"

// Root-relative file names probed by the resolver.
const (
	FileOverride = ".env.override"
	FileBase     = ".env"
	FileLocal    = ".env.local"
	FileTest     = ".env.test"
	FileSample   = ".env.sample"
)
