package msbuild_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/predictors/msbuild"
)

func newProject(properties map[string]string) *domain.Project {
	return domain.NewProject(domain.ProjectSpec{
		FullPath:   filepath.FromSlash("/repo/app/app.proj.yaml"),
		Properties: properties,
	})
}

func TestIsTrue(t *testing.T) {
	assert.True(t, msbuild.IsTrue("true"))
	assert.True(t, msbuild.IsTrue(" TRUE "))
	assert.False(t, msbuild.IsTrue(""))
	assert.False(t, msbuild.IsTrue("yes"))

	assert.True(t, msbuild.IsFalse("False"))
	assert.False(t, msbuild.IsFalse(""))
}

func TestOutDir(t *testing.T) {
	tests := []struct {
		name       string
		properties map[string]string
		want       string
	}{
		{name: "OutDir", properties: map[string]string{"OutDir": `bin\Debug\`}, want: "/repo/app/bin/Debug"},
		{name: "OutputPath fallback", properties: map[string]string{"OutputPath": "out"}, want: "/repo/app/out"},
		{name: "OutDir wins", properties: map[string]string{"OutDir": "a", "OutputPath": "b"}, want: "/repo/app/a"},
		{name: "absolute", properties: map[string]string{"OutDir": "/artifacts/bin"}, want: "/artifacts/bin"},
		{name: "unset", properties: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), msbuild.OutDir(newProject(tt.properties)))
		})
	}
}

func TestShouldCopy(t *testing.T) {
	assert.True(t, msbuild.ShouldCopy("Always"))
	assert.True(t, msbuild.ShouldCopy("preservenewest"))
	assert.True(t, msbuild.ShouldCopy("IfDifferent"))
	assert.False(t, msbuild.ShouldCopy("Never"))
	assert.False(t, msbuild.ShouldCopy(""))
}

func TestCopyDestination(t *testing.T) {
	dir := filepath.FromSlash("/repo/app")
	tests := []struct {
		name string
		item domain.Item
		want string
	}{
		{
			name: "TargetPath metadata",
			item: domain.NewItem("data/a.json", map[string]string{"TargetPath": `config\a.json`, "Link": "ignored.json"}),
			want: "config/a.json",
		},
		{
			name: "Link metadata",
			item: domain.NewItem(`..\shared\b.json`, map[string]string{"Link": `linked\b.json`}),
			want: "linked/b.json",
		},
		{
			name: "inside project directory",
			item: domain.NewItem(`data\c.json`, nil),
			want: "data/c.json",
		},
		{
			name: "outside project directory",
			item: domain.NewItem(`..\shared\d.json`, nil),
			want: "d.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), msbuild.CopyDestination(tt.item, dir))
		})
	}
}

func TestPrimaryOutput(t *testing.T) {
	tests := []struct {
		name       string
		properties map[string]string
		want       string
	}{
		{name: "TargetPath", properties: map[string]string{"TargetPath": "/out/app.exe"}, want: "/out/app.exe"},
		{name: "TargetFileName", properties: map[string]string{"OutDir": "bin", "TargetFileName": "app.exe"}, want: "/repo/app/bin/app.exe"},
		{
			name:       "AssemblyName and TargetExt",
			properties: map[string]string{"OutDir": "bin", "AssemblyName": "Contoso.App", "TargetExt": ".exe"},
			want:       "/repo/app/bin/Contoso.App.exe",
		},
		{name: "project name default", properties: map[string]string{"OutDir": "bin", "MSBuildProjectName": "app"}, want: "/repo/app/bin/app.dll"},
		{name: "no output directory", properties: map[string]string{"AssemblyName": "app"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), msbuild.PrimaryOutput(newProject(tt.properties)))
		})
	}
}
