package consts

// Permissions for files and directories ytdlproxy creates.
const (
	PermsTempDir = 0o755
	PermsLogFile = 0o644

	// Private
	PermsCookieFile = 0o600
)
