package constants

// Centralized constants for env keys, headers and shared messages.
const (
	// Environment variable keys
	EnvConfigPath = "BATTLEFORGE_CONFIG"
	EnvDBPath     = "BATTLEFORGE_DB"
	EnvListenAddr = "BATTLEFORGE_ADDR"
	EnvPrettyLogs = "BATTLEFORGE_PRETTY_LOGS"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteCharacters      = "/characters"
	RouteCharacterByUUID = "/characters/:uuid"
	RouteCharacterHeal   = "/characters/:uuid/heal"
	RouteLeaderboard     = "/leaderboard"

	RouteBattles                = "/battles"
	RouteBattleByUUID           = "/battles/:uuid"
	RouteBattleLog              = "/battles/:uuid/log"
	RouteBattleCommit           = "/battles/:uuid/commit"
	RouteBattleReveal           = "/battles/:uuid/reveal"
	RouteBattleWildcardDecision = "/battles/:uuid/wildcard-decision"
	RouteBattleWildcardTimeout  = "/battles/:uuid/wildcard-timeout"
	RouteBattleAITurn           = "/battles/:uuid/ai-turn"
	RouteBattleCheckTimeout     = "/battles/:uuid/check-timeout"
	RouteBattleFinalize         = "/battles/:uuid/finalize"

	RouteBattleStream = "/ws/battles/:uuid"
	RouteVersion      = "/version"
	RouteHealth       = "/health"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrCharacterNotFound   = "Character not found"
	ErrBattleNotFound      = "Battle not found"
	ErrFailedFetchBoard    = "Failed to fetch leaderboard"
	ErrFailedCreate        = "Failed to create"
	ErrFailedUpdate        = "Failed to update"
	ErrNameRequired        = "name is required"
	ErrNameExceeds         = "Name exceeds 32 characters"
	ErrUnknownClass        = "Unknown character class"
	ErrUnknownMatchType    = "Unknown match type"
	ErrUnknownStance       = "Unknown stance"
	ErrSameCharacterTwice  = "A character cannot battle itself"
	ErrStreamUpgradeFailed = "Failed to open battle stream"
)

// Logging field names
const (
	LogFieldBattleID  = "battle_id"
	LogFieldCharacter = "character_uuid"
	LogFieldTurn      = "turn"
	LogFieldWildcard  = "wildcard"
	LogFieldWinner    = "winner"
	LogFieldDamage    = "damage"
	LogFieldAddr      = "addr"
	LogFieldStake     = "stake"
)
