package cmd

var (
	scriptDirs   []string
	repoURL      string
	outputFile   string
	modeName     string
	menuFile     string
	markdownOut  bool
	browseMenu   bool
	showDisabled bool
	showStats    bool
	maxDepth     int
	debugMode    bool

	showAllConfigs bool

	addAlias    string
	removeAlias string
	listAliases bool
	assumeYes   bool
)
