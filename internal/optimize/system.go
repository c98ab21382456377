package optimize

import (
	"github.com/lakshaymaurya-felt/wintune/internal/clean"
	"github.com/lakshaymaurya-felt/wintune/internal/godmode"
	"github.com/lakshaymaurya-felt/wintune/internal/netopt"
)

// System backs the capability set with the real Windows operations.
type System struct{}

var _ Primitives = System{}

func (System) CleanTempDir(dryRun bool) Result {
	return asResult(clean.Temp(dryRun))
}

func (System) EmptyRecycleBin(dryRun bool) Result {
	return asResult(clean.RecycleBin(dryRun))
}

func (System) OptimizeTCP(dryRun bool) Result {
	return asResult(netopt.OptimizeTCP(dryRun))
}

func (System) ListAdapters() []string {
	return netopt.ListAdapters()
}

func (System) RestartAdapter(name string, dryRun bool) Result {
	return asResult(netopt.RestartAdapter(name, dryRun))
}

func (System) ShowWifiPasswords(dryRun bool) Result {
	return asResult(netopt.ShowWifiPasswords(dryRun))
}

func (System) CreateGodMode(dryRun bool) Result {
	return asResult(godmode.Create(dryRun))
}

func asResult(ok bool, msg string) Result {
	return Result{OK: ok, Message: msg}
}
