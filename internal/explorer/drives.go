package explorer

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/shirou/gopsutil/v4/disk"
)

// Drive is a top-level mount point offered by the navigator
type Drive struct {
	Root   string
	Device string
	FSType string
}

// DriveUsage reports capacity of the file system holding a root
type DriveUsage struct {
	Total uint64
	Free  uint64
}

// PartitionSource enumerates mounted partitions
type PartitionSource func(ctx context.Context) ([]disk.PartitionStat, error)

// DriveLister discovers drive roots. Extra roots are listed first.
type DriveLister struct {
	partitions PartitionSource
	extra      []string
}

func NewDriveLister(extra []string) *DriveLister {
	return &DriveLister{
		partitions: physicalPartitions,
		extra:      extra,
	}
}

// NewDriveListerWithSource swaps the partition enumeration, used by tests
func NewDriveListerWithSource(src PartitionSource, extra []string) *DriveLister {
	return &DriveLister{partitions: src, extra: extra}
}

func physicalPartitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

// ListRoots never returns an empty list; the platform root stands in when
// enumeration fails.
func (l *DriveLister) ListRoots(ctx context.Context) ([]Drive, error) {
	seen := make(map[string]bool)
	var drives []Drive

	for _, root := range l.extra {
		if root == "" {
			continue
		}
		abs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		if !seen[abs] {
			seen[abs] = true
			drives = append(drives, Drive{Root: abs})
		}
	}

	parts, err := l.partitions(ctx)

	var mounted []Drive
	for _, p := range parts {
		if p.Fstype == "squashfs" {
			continue
		}
		root := normalizeRoot(p.Mountpoint)
		if root == "" || seen[root] {
			continue
		}
		seen[root] = true
		mounted = append(mounted, Drive{Root: root, Device: p.Device, FSType: p.Fstype})
	}
	sort.Slice(mounted, func(i, j int) bool { return mounted[i].Root < mounted[j].Root })
	drives = append(drives, mounted...)

	if len(mounted) == 0 {
		if fallback := platformRoot(); !seen[fallback] {
			drives = append(drives, Drive{Root: fallback})
		}
	}

	if err != nil {
		return drives, fmt.Errorf("enumerate partitions: %w", err)
	}
	return drives, nil
}

// Usage reports total and free bytes for the file system holding root
func (l *DriveLister) Usage(ctx context.Context, root string) (DriveUsage, error) {
	stat, err := disk.UsageWithContext(ctx, root)
	if err != nil {
		return DriveUsage{}, fmt.Errorf("usage of %s: %w", root, err)
	}
	return DriveUsage{Total: stat.Total, Free: stat.Free}, nil
}

// normalizeRoot turns "C:" into `C:\` and cleans everything else
func normalizeRoot(mount string) string {
	if mount == "" {
		return ""
	}
	if len(mount) == 2 && mount[1] == ':' {
		return mount + `\`
	}
	return filepath.Clean(mount)
}

func platformRoot() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}
