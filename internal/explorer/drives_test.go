package explorer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roots(drives []Drive) []string {
	out := make([]string, len(drives))
	for i, d := range drives {
		out[i] = d.Root
	}
	return out
}

func TestListRoots_SortsAndDeduplicates(t *testing.T) {
	src := func(context.Context) ([]disk.PartitionStat, error) {
		return []disk.PartitionStat{
			{Device: "/dev/sdb1", Mountpoint: "/mnt/usb", Fstype: "vfat"},
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/loop0", Mountpoint: "/snap/core/1", Fstype: "squashfs"},
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
		}, nil
	}

	drives, err := NewDriveListerWithSource(src, nil).ListRoots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Clean("/"), filepath.Clean("/mnt/usb")}, roots(drives))
	assert.Equal(t, "ext4", drives[0].FSType)
}

func TestListRoots_ExtraRootsFirst(t *testing.T) {
	home := t.TempDir()
	src := func(context.Context) ([]disk.PartitionStat, error) {
		return []disk.PartitionStat{{Mountpoint: "/data"}}, nil
	}

	drives, err := NewDriveListerWithSource(src, []string{home, "", home}).ListRoots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{home, filepath.Clean("/data")}, roots(drives))
}

func TestListRoots_FallbackWhenEnumerationFails(t *testing.T) {
	src := func(context.Context) ([]disk.PartitionStat, error) {
		return nil, errors.New("permission denied")
	}

	drives, err := NewDriveListerWithSource(src, nil).ListRoots(context.Background())
	assert.Error(t, err)
	require.Len(t, drives, 1)
	assert.Equal(t, platformRoot(), drives[0].Root)
}

func TestNormalizeRoot(t *testing.T) {
	assert.Equal(t, `C:\`, normalizeRoot("C:"))
	assert.Equal(t, "", normalizeRoot(""))
	assert.Equal(t, filepath.Clean("/media/disk"), normalizeRoot("/media/disk/"))
}

func TestUsage_TempDir(t *testing.T) {
	usage, err := NewDriveLister(nil).Usage(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.NotZero(t, usage.Total)
	assert.LessOrEqual(t, usage.Free, usage.Total)
}
