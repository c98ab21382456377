package clean

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lakshaymaurya-felt/wintune/internal/core"
)

// ─── Shell32 Syscalls ────────────────────────────────────────────────────────

var (
	modShell32          = syscall.NewLazyDLL("shell32.dll")
	procEmptyRecycleBin = modShell32.NewProc("SHEmptyRecycleBinW")
	procQueryRecycleBin = modShell32.NewProc("SHQueryRecycleBinW")
)

const (
	sherbNoConfirmation = 0x00000001
	sherbNoProgressUI   = 0x00000002
	sherbNoSound        = 0x00000004

	// E_UNEXPECTED, returned when the bin is already empty.
	hrAlreadyEmpty = 0x8000FFFF
)

// shQueryRBInfo mirrors the Windows SHQUERYRBINFO struct. Go's natural
// alignment adds padding after cbSize on AMD64, matching the C layout.
type shQueryRBInfo struct {
	cbSize      uint32
	i64Size     int64
	i64NumItems int64
}

// QueryRecycleBin returns the total size and item count of the Recycle Bin
// across all drives via SHQueryRecycleBinW.
func QueryRecycleBin() (size, items int64, err error) {
	var info shQueryRBInfo
	info.cbSize = uint32(unsafe.Sizeof(info))

	ret, _, _ := procQueryRecycleBin.Call(
		0, // NULL = query all drives
		uintptr(unsafe.Pointer(&info)),
	)
	if ret != 0 {
		return 0, 0, fmt.Errorf("SHQueryRecycleBinW failed: HRESULT 0x%08X", uint32(ret))
	}
	return info.i64Size, info.i64NumItems, nil
}

// RecycleBin empties the Windows Recycle Bin on all drives via the
// SHEmptyRecycleBinW Shell API. An already-empty bin counts as success.
func RecycleBin(dryRun bool) (bool, string) {
	size, items, qerr := QueryRecycleBin()

	if dryRun {
		if qerr == nil {
			return true, fmt.Sprintf("Dry-run: would empty the Recycle Bin (%d items, %s).",
				items, core.FormatSize(size))
		}
		return true, "Dry-run: would call SHEmptyRecycleBinW for all drives."
	}

	flags := uintptr(sherbNoConfirmation | sherbNoProgressUI | sherbNoSound)
	ret, _, _ := procEmptyRecycleBin.Call(0, 0, flags)

	hr := uint32(ret)
	if hr != 0 && hr != hrAlreadyEmpty {
		return false, fmt.Sprintf("SHEmptyRecycleBinW returned HRESULT 0x%08X", hr)
	}
	if hr == hrAlreadyEmpty {
		return true, "Recycle Bin was already empty."
	}
	if qerr == nil {
		return true, fmt.Sprintf("Recycle Bin emptied (%s reclaimed).", core.FormatSize(size))
	}
	return true, "Recycle Bin emptied."
}
