package commands

import (
	"embed"
	"io/fs"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Merge a C/C++ project's sources and build files into one document"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgListShort    = "List the files a merge would include"
	MsgConfigShort  = "Print the effective configuration"

	// Version output
	MsgVersionFormat = "codemerge version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Configuration file layered over the project configuration"
	MsgFlagOutput   = "Output file (default \"merged.txt\")"
	MsgFlagProgress = "Progress display: auto, bar, pterm or none"
	MsgFlagDedupe   = "Merge a file reached through several paths only once"
	MsgFlagWorkers  = "Number of concurrent directory walkers"
	MsgFlagMaxFiles = "Abort when more than this many files are collected (0 = no limit)"
	MsgFlagFormat   = "Result format: auto, term, text, json, yaml or xml"
	MsgFlagDefaults = "Print the commented built-in configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")
)

//go:embed help
var helpFS embed.FS

// HelpTopics returns the embedded help topics, rooted at the topic files
func HelpTopics() fs.FS {
	sub, err := fs.Sub(helpFS, "help")
	if err != nil {
		panic(err)
	}
	return sub
}
