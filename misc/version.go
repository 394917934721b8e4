// Package misc holds build time information.
package misc

// Set with -ldflags "-X stylec/misc.version=... -X stylec/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return "stylec"
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
