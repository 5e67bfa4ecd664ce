package embedded

import (
	_ "embed"
)

// Embed all genre template documents
//
//go:embed data/genres/organic_house.yaml
var OrganicHouseYAML []byte

//go:embed data/genres/deep_house.yaml
var DeepHouseYAML []byte

//go:embed data/genres/melodic_techno.yaml
var MelodicTechnoYAML []byte

//go:embed data/genres/progressive_house.yaml
var ProgressiveHouseYAML []byte

//go:embed data/genres/afro_house.yaml
var AfroHouseYAML []byte
