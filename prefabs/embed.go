package prefabs

import _ "embed"

//go:embed actors.yaml
var actorsYAML []byte
