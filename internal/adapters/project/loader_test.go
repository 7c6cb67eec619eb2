package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seer/internal/adapters/project"
	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/seer/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeProject(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func fullPaths(nodes []ports.ProjectGraphNode) []string {
	paths := make([]string, 0, len(nodes))
	for _, n := range nodes {
		paths = append(paths, n.Project().FullPath())
	}
	return paths
}

func TestLoader_Load_Document(t *testing.T) {
	root := t.TempDir()
	path := writeProject(t, filepath.Join(root, "app", "app.proj.yaml"), `
properties:
  OutDir: 'bin\Debug\'
  SignAssembly: "true"
imports:
  - ..\Directory.Build.props
items:
  Compile:
    - Program.cs
    - include: Generated\Version.cs
      metadata:
        Link: Version.cs
    - ""
`)

	loader := project.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	graph, err := loader.Load(path)
	require.NoError(t, err)

	p := graph.EntryNode().Project()
	assert.Equal(t, path, p.FullPath())
	assert.Equal(t, filepath.Join(root, "app"), p.Directory())
	assert.Equal(t, `bin\Debug\`, p.Property("outdir"))
	assert.Equal(t, "true", p.Property("SignAssembly"))
	assert.Equal(t, "app", p.Property("MSBuildProjectName"))
	assert.Equal(t, []string{filepath.Join(root, "Directory.Build.props")}, p.ImportPaths())

	compile := p.Items("compile")
	require.Len(t, compile, 2)
	assert.Equal(t, "Program.cs", compile[0].Include)
	assert.False(t, compile[0].HasMetadata("Link"))
	assert.Equal(t, `Generated\Version.cs`, compile[1].Include)
	assert.Equal(t, "Version.cs", compile[1].Metadata("link"))
}

func TestLoader_Load_ReferenceGraphWithCycle(t *testing.T) {
	root := t.TempDir()
	a := writeProject(t, filepath.Join(root, "a", "a.proj.yaml"), `
items:
  ProjectReference:
    - ..\b\b.proj.yaml
    - ../c/c.proj.yaml
`)
	b := writeProject(t, filepath.Join(root, "b", "b.proj.yaml"), `
items:
  ProjectReference:
    - ..\a\a.proj.yaml
    - ..\c\c.proj.yaml
`)
	c := writeProject(t, filepath.Join(root, "c", "c.proj.yaml"), `{}`)

	loader := project.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	graph, err := loader.Load(a)
	require.NoError(t, err)

	assert.Equal(t, []string{a, b, c}, fullPaths(graph.Nodes()))

	entry := graph.EntryNode()
	require.Len(t, entry.References(), 2)
	bNode := entry.References()[0]
	require.Len(t, bNode.References(), 2)
	assert.Same(t, entry, bNode.References()[0], "cycles point back to the same node")
	assert.Same(t, entry.References()[1], bNode.References()[1], "shared references are loaded once")
}

func TestLoader_Load_SkipsBrokenReferences(t *testing.T) {
	root := t.TempDir()
	a := writeProject(t, filepath.Join(root, "a", "a.proj.yaml"), `
items:
  ProjectReference:
    - ..\missing\missing.proj.yaml
    - ..\broken\broken.proj.yaml
`)
	writeProject(t, filepath.Join(root, "broken", "broken.proj.yaml"), "items: [not, a, map")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(2)

	graph, err := project.NewLoader(log).Load(a)
	require.NoError(t, err)
	assert.Len(t, graph.Nodes(), 1)
	assert.Empty(t, graph.EntryNode().References())
}

func TestLoader_Load_Directory(t *testing.T) {
	root := t.TempDir()
	path := writeProject(t, filepath.Join(root, "lib", "lib.proj.yaml"), `{}`)

	loader := project.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	graph, err := loader.Load(filepath.Join(root, "lib"))
	require.NoError(t, err)
	assert.Equal(t, path, graph.EntryNode().Project().FullPath())
}

func TestLoader_Load_Errors(t *testing.T) {
	root := t.TempDir()
	writeProject(t, filepath.Join(root, "two", "a.proj.yaml"), `{}`)
	writeProject(t, filepath.Join(root, "two", "b.proj.yaml"), `{}`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o750))
	invalid := writeProject(t, filepath.Join(root, "bad", "bad.proj.yaml"), "properties: [")

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "no project", path: "", wantErr: domain.ErrNoProjectSpecified},
		{name: "missing file", path: filepath.Join(root, "nope.proj.yaml"), wantErr: domain.ErrProjectNotFound},
		{name: "empty directory", path: filepath.Join(root, "empty"), wantErr: domain.ErrProjectNotFound},
		{name: "ambiguous directory", path: filepath.Join(root, "two"), wantErr: domain.ErrAmbiguousProject},
		{name: "invalid document", path: invalid, wantErr: domain.ErrProjectParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := project.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
			_, err := loader.Load(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr.Error())
		})
	}
}
