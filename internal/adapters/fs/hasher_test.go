package fs_test

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seer/internal/adapters/fs"
	"go.trai.ch/seer/internal/core/domain"
)

func predictionOf(files, dirs []string) *domain.Prediction {
	p := &domain.Prediction{}
	for _, f := range files {
		p.InputFiles = append(p.InputFiles, domain.PredictedPath{Path: f})
	}
	for _, d := range dirs {
		p.InputDirectories = append(p.InputDirectories, domain.PredictedPath{Path: d})
	}
	return p
}

func TestHasher_ComputeInputHash(t *testing.T) {
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "a.cs")
	includes := filepath.Join(tmpDir, "Includes")
	writeFile(t, source, "class A {}")
	writeFile(t, filepath.Join(includes, "a.h"), "#pragma once")

	hasher := fs.NewHasher(fs.NewWalker())
	prediction := predictionOf([]string{source}, []string{includes})

	first, err := hasher.ComputeInputHash(prediction)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := hasher.ComputeInputHash(prediction)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	t.Run("file content change", func(t *testing.T) {
		require.NoError(t, os.WriteFile(source, []byte("class A { int x; }"), 0o600))
		changed, err := hasher.ComputeInputHash(prediction)
		require.NoError(t, err)
		assert.NotEqual(t, first, changed)
	})

	t.Run("directory content change", func(t *testing.T) {
		before, err := hasher.ComputeInputHash(prediction)
		require.NoError(t, err)
		writeFile(t, filepath.Join(includes, "b.h"), "#pragma once")
		after, err := hasher.ComputeInputHash(prediction)
		require.NoError(t, err)
		assert.NotEqual(t, before, after)
	})
}

func TestHasher_MissingInputs(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "generated.cs")

	hasher := fs.NewHasher(fs.NewWalker())
	prediction := predictionOf([]string{missing}, []string{filepath.Join(tmpDir, "gen")})

	before, err := hasher.ComputeInputHash(prediction)
	require.NoError(t, err)

	writeFile(t, missing, "class Generated {}")
	after, err := hasher.ComputeInputHash(prediction)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestHasher_UnreadableInputContributesPath(t *testing.T) {
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "a.cs")
	writeFile(t, source, "class A {}")

	socket := filepath.Join(tmpDir, "in.sock")
	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}
	t.Cleanup(func() { _ = listener.Close() })

	hasher := fs.NewHasher(fs.NewWalker())
	prediction := predictionOf([]string{source, socket}, []string{tmpDir})

	first, err := hasher.ComputeInputHash(prediction)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := hasher.ComputeInputHash(prediction)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.txt")
	b := filepath.Join(tmpDir, "b.txt")
	writeFile(t, a, "same")
	writeFile(t, b, "same")

	hasher := fs.NewHasher(fs.NewWalker())

	hashA, err := hasher.ComputeFileHash(a)
	require.NoError(t, err)
	hashB, err := hasher.ComputeFileHash(b)
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB)

	_, err = hasher.ComputeFileHash(filepath.Join(tmpDir, "missing"))
	require.Error(t, err)
}
