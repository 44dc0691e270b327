package classdesc

import "github.com/hashicorp/hcl/v2"

type rootSchema struct {
	Classes   []*classSchema    `hcl:"class,block"`
	Generates []*generateSchema `hcl:"generate,block"`
}

type classSchema struct {
	Name       string          `hcl:"name,label"`
	Visibility string          `hcl:"visibility,optional"`
	Abstract   bool            `hcl:"abstract,optional"`
	Static     bool            `hcl:"static,optional"`
	Extends    string          `hcl:"extends,optional"`
	Fields     []*fieldSchema  `hcl:"field,block"`
	Methods    []*methodSchema `hcl:"method,block"`
	Classes    []*classSchema  `hcl:"class,block"`
}

type fieldSchema struct {
	Name       string `hcl:"name,label"`
	Type       string `hcl:"type"`
	Visibility string `hcl:"visibility,optional"`
	Final      bool   `hcl:"final,optional"`
}

type methodSchema struct {
	Text string `hcl:"text"`
}

// generateSchema selects a class and the fields to drive builder
// generation with. fields is either the string "*" or a list of field
// names.
type generateSchema struct {
	Class  string         `hcl:"class,label"`
	Fields hcl.Expression `hcl:"fields"`
}
