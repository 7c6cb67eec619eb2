package project

import (
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of one evaluated project.
//
//	properties:
//	  OutDir: bin\Debug\
//	imports:
//	  - ..\Directory.Build.props
//	items:
//	  Compile:
//	    - Program.cs
//	    - include: Generated\Version.cs
//	      metadata:
//	        Link: Version.cs
type Document struct {
	Properties map[string]string    `yaml:"properties"`
	Imports    []string             `yaml:"imports"`
	Items      map[string][]ItemDTO `yaml:"items"`
}

// ItemDTO is one item of a Document. A plain scalar is shorthand for an item
// without metadata.
type ItemDTO struct {
	Include  string            `yaml:"include"`
	Metadata map[string]string `yaml:"metadata"`
}

// UnmarshalYAML accepts either a scalar include or a mapping.
func (i *ItemDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		i.Include = node.Value
		return nil
	}

	type plain ItemDTO
	var dto plain
	if err := node.Decode(&dto); err != nil {
		return err
	}
	*i = ItemDTO(dto)
	return nil
}
