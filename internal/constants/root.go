package constants

const (
	AppName            = "lifeos"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/lifeos/lifeos.db"
	Version            = "v0.1.0"

	// ConnectionEnvVar names the environment variable consulted for remote media.
	ConnectionEnvVar = "LIFEOS_DB_CONNECTION"
	// EnvFileName is loaded from the config directory when present.
	EnvFileName = ".env"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifeos-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "lifeos-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.lifeos"
	TrayExecutablePrefix   = "lifeos-tray"

	// Profile photos larger than this are rejected before reading.
	MaxPhotoBytes = 2000000

	// PinLength is the number of digits in the diary vault PIN.
	PinLength = 4
)

// Habit tiers, keyed by the minimum streak that reaches them.
const (
	TierSpark   = "SPARK"
	TierBlaze   = "BLAZE"
	TierInferno = "INFERNO"
	TierPhoenix = "PHOENIX"

	BlazeThreshold   = 7
	InfernoThreshold = 21
	PhoenixThreshold = 66
	// PhoenixTarget is the progress denominator once the last tier is reached.
	PhoenixTarget = 100
)

// Diary status labels shown on the dashboard.
const (
	DiaryReflected = "REFLECTED"
	DiaryPending   = "PENDING"
)

// NoneLabel is reported by analytics over an empty collection.
const NoneLabel = "None"
