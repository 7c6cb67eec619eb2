package ruleset

import (
	"encoding/xml"
	"strings"
)

// document is the subset of a code analysis rule set read for prediction.
//
//	<RuleSet Name="..." ToolsVersion="16.0">
//	  <Include Path="..\shared.ruleset" Action="Default" />
//	  <RuleHintPaths>
//	    <Path>..\analyzers\Custom.Rules.dll</Path>
//	  </RuleHintPaths>
//	</RuleSet>
type document struct {
	XMLName   xml.Name  `xml:"RuleSet"`
	Includes  []include `xml:"Include"`
	HintPaths []string  `xml:"RuleHintPaths>Path"`
}

type include struct {
	Path string `xml:"Path,attr"`
}

func parseDocument(data []byte) (*document, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *document) includePaths() []string {
	paths := make([]string, 0, len(d.Includes))
	for _, inc := range d.Includes {
		if p := strings.TrimSpace(inc.Path); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
