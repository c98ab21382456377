package optimize

// Primitives is the capability set of system operations the orchestrator
// drives. Each method is an opaque "perform X, report outcome" call; the
// orchestrator never depends on how an action is carried out, which is what
// lets tests substitute fakes.
type Primitives interface {
	CleanTempDir(dryRun bool) Result
	EmptyRecycleBin(dryRun bool) Result
	OptimizeTCP(dryRun bool) Result
	ListAdapters() []string
	RestartAdapter(name string, dryRun bool) Result
	ShowWifiPasswords(dryRun bool) Result
	CreateGodMode(dryRun bool) Result
}
