package catalog

var products = []Product{
	{ID: "rg-solitaire-aurore", Name: "Aurore Solitaire Ring", Category: CategoryRings, Material: "platinum", Gemstone: "diamond", Price: 4850, Description: "1.2ct round brilliant solitaire on a hand-finished platinum band.", Featured: true, InStock: true},
	{ID: "rg-trilogy-celeste", Name: "Céleste Trilogy Ring", Category: CategoryRings, Material: "18k white gold", Gemstone: "diamond", Price: 3200, Description: "Three-stone ring with tapered shoulders.", InStock: true},
	{ID: "rg-signet-heritage", Name: "Heritage Signet Ring", Category: CategoryRings, Material: "18k yellow gold", Price: 1150, Description: "Engravable oval signet in polished yellow gold.", InStock: true},
	{ID: "rg-band-eternite", Name: "Éternité Pavé Band", Category: CategoryRings, Material: "platinum", Gemstone: "diamond", Price: 2650, Description: "Full-circle pavé eternity band.", Featured: true, InStock: false},
	{ID: "nk-riviere-lumen", Name: "Lumen Rivière Necklace", Category: CategoryNecklaces, Material: "18k white gold", Gemstone: "diamond", Price: 9800, Description: "Graduated diamond rivière, 42cm.", Featured: true, InStock: true},
	{ID: "nk-pendant-goutte", Name: "Goutte Sapphire Pendant", Category: CategoryNecklaces, Material: "18k white gold", Gemstone: "sapphire", Price: 2350, Description: "Pear-cut Ceylon sapphire drop pendant.", InStock: true},
	{ID: "nk-chain-maillon", Name: "Maillon Chain", Category: CategoryNecklaces, Material: "18k yellow gold", Price: 1750, Description: "Hand-assembled oval-link chain, 45cm.", InStock: true},
	{ID: "nk-collier-perle", Name: "Perle Akoya Strand", Category: CategoryNecklaces, Material: "18k yellow gold", Gemstone: "pearl", Price: 3900, Description: "Akoya pearl strand with gold clasp.", InStock: false},
	{ID: "er-studs-clarte", Name: "Clarté Diamond Studs", Category: CategoryEarrings, Material: "platinum", Gemstone: "diamond", Price: 2950, Description: "Matched pair of round brilliants, four-claw setting.", Featured: true, InStock: true},
	{ID: "er-hoops-ruban", Name: "Ruban Hoops", Category: CategoryEarrings, Material: "18k rose gold", Price: 980, Description: "Slim twisted hoops in rose gold.", InStock: true},
	{ID: "er-drops-emeraude", Name: "Émeraude Drop Earrings", Category: CategoryEarrings, Material: "18k white gold", Gemstone: "emerald", Price: 5400, Description: "Colombian emerald drops with diamond surrounds.", InStock: true},
	{ID: "br-tennis-ligne", Name: "Ligne Tennis Bracelet", Category: CategoryBracelets, Material: "18k white gold", Gemstone: "diamond", Price: 6200, Description: "Classic line bracelet, 3.0ct total.", Featured: true, InStock: true},
	{ID: "br-bangle-lisse", Name: "Lisse Bangle", Category: CategoryBracelets, Material: "18k yellow gold", Price: 1450, Description: "Seamless polished bangle.", InStock: true},
	{ID: "br-cuff-onde", Name: "Onde Cuff", Category: CategoryBracelets, Material: "18k rose gold", Price: 2100, Description: "Open cuff with wave profile.", InStock: false},
}

var consultationTypes = []ConsultationType{
	{
		ID:              "custom-design",
		Name:            "Custom Design",
		Description:     "Work with our atelier on a one-of-a-kind piece, from sketch to stone selection.",
		DurationMinutes: 90,
		BasePrice:       150,
		Features:        []string{"Design sketches", "Stone sourcing", "3D wax preview"},
		Popular:         true,
	},
	{
		ID:              "private-viewing",
		Name:            "Private Viewing",
		Description:     "A dedicated hour in the salon with pieces pulled to your brief.",
		DurationMinutes: 60,
		BasePrice:       75,
		Features:        []string{"Curated selection", "Champagne service"},
	},
	{
		ID:              "bridal-styling",
		Name:            "Bridal Styling",
		Description:     "Engagement and wedding jewelry consultation for couples.",
		DurationMinutes: 75,
		BasePrice:       100,
		Features:        []string{"Ring sizing", "Pairing guidance"},
		Popular:         true,
	},
	{
		ID:              "repair-appraisal",
		Name:            "Repair & Appraisal",
		Description:     "Assessment of heirloom or damaged pieces with a written estimate.",
		DurationMinutes: 45,
		BasePrice:       50,
		Features:        []string{"Condition report", "Insurance appraisal"},
	},
}
