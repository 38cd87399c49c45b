package catalog

import "SkinScout/internal/model"

var defaultCategories = []Category{
	{Name: "rifles", Items: []model.Item{
		{Name: "AK-47 | Redline", HashName: "AK-47 | Redline (Field-Tested)", BasePrice: 25, Volatility: 0.15, Demand: model.DemandHigh},
		{Name: "AK-47 | Vulcan", HashName: "AK-47 | Vulcan (Minimal Wear)", BasePrice: 180, Volatility: 0.12, Demand: model.DemandVeryHigh},
		{Name: "AK-47 | Asiimov", HashName: "AK-47 | Asiimov (Field-Tested)", BasePrice: 65, Volatility: 0.18, Demand: model.DemandHigh},
		{Name: "M4A4 | Howl", HashName: "M4A4 | Howl (Field-Tested)", BasePrice: 3200, Volatility: 0.08, Demand: model.DemandHigh},
		{Name: "M4A1-S | Printstream", HashName: "M4A1-S | Printstream (Field-Tested)", BasePrice: 95, Volatility: 0.14, Demand: model.DemandHigh},
		{Name: "StatTrak™ M4A1-S | Hyper Beast", HashName: "StatTrak™ M4A1-S | Hyper Beast (Field-Tested)", BasePrice: 42, Volatility: 0.22, Demand: model.DemandMedium},
		{Name: "FAMAS | Commemoration", HashName: "FAMAS | Commemoration (Field-Tested)", BasePrice: 8, Volatility: 0.3, Demand: model.DemandLow},
	}},
	{Name: "snipers", Items: []model.Item{
		{Name: "AWP | Asiimov", HashName: "AWP | Asiimov (Field-Tested)", BasePrice: 110, Volatility: 0.1, Demand: model.DemandVeryHigh},
		{Name: "AWP | Dragon Lore", HashName: "AWP | Dragon Lore (Field-Tested)", BasePrice: 9500, Volatility: 0.06, Demand: model.DemandHigh},
		{Name: "AWP | Neo-Noir", HashName: "AWP | Neo-Noir (Field-Tested)", BasePrice: 38, Volatility: 0.17, Demand: model.DemandMedium},
		{Name: "SSG 08 | Dragonfire", HashName: "SSG 08 | Dragonfire (Field-Tested)", BasePrice: 22, Volatility: 0.26, Demand: model.DemandLow},
	}},
	{Name: "pistols", Items: []model.Item{
		{Name: "Desert Eagle | Blaze", HashName: "Desert Eagle | Blaze (Factory New)", BasePrice: 520, Volatility: 0.09, Demand: model.DemandHigh},
		{Name: "USP-S | Kill Confirmed", HashName: "USP-S | Kill Confirmed (Field-Tested)", BasePrice: 48, Volatility: 0.16, Demand: model.DemandHigh},
		{Name: "Glock-18 | Fade", HashName: "Glock-18 | Fade (Factory New)", BasePrice: 1400, Volatility: 0.07, Demand: model.DemandMedium},
		{Name: "StatTrak™ Glock-18 | Water Elemental", HashName: "StatTrak™ Glock-18 | Water Elemental (Field-Tested)", BasePrice: 12, Volatility: 0.28, Demand: model.DemandMedium},
	}},
	{Name: "smgs", Items: []model.Item{
		{Name: "MP9 | Starlight Protector", HashName: "MP9 | Starlight Protector (Field-Tested)", BasePrice: 9, Volatility: 0.27, Demand: model.DemandLow},
		{Name: "MAC-10 | Neon Rider", HashName: "MAC-10 | Neon Rider (Field-Tested)", BasePrice: 4, Volatility: 0.2, Demand: model.DemandMedium},
		{Name: "P90 | Asiimov", HashName: "P90 | Asiimov (Field-Tested)", BasePrice: 6, Volatility: 0.19, Demand: model.DemandMedium},
	}},
	{Name: "knives", Items: []model.Item{
		{Name: "★ Karambit | Doppler", HashName: "★ Karambit | Doppler (Factory New)", BasePrice: 1250, Volatility: 0.11, Demand: model.DemandVeryHigh},
		{Name: "★ Butterfly Knife | Fade", HashName: "★ Butterfly Knife | Fade (Factory New)", BasePrice: 2100, Volatility: 0.1, Demand: model.DemandHigh},
		{Name: "★ Bayonet | Gamma Doppler", HashName: "★ Bayonet | Gamma Doppler (Factory New)", BasePrice: 640, Volatility: 0.13, Demand: model.DemandHigh},
		{Name: "★ Shadow Daggers | Slaughter", HashName: "★ Shadow Daggers | Slaughter (Minimal Wear)", BasePrice: 140, Volatility: 0.21, Demand: model.DemandMedium},
	}},
	{Name: "gloves", Items: []model.Item{
		{Name: "★ Sport Gloves | Pandora's Box", HashName: "★ Sport Gloves | Pandora's Box (Field-Tested)", BasePrice: 3800, Volatility: 0.09, Demand: model.DemandHigh},
		{Name: "★ Driver Gloves | King Snake", HashName: "★ Driver Gloves | King Snake (Field-Tested)", BasePrice: 310, Volatility: 0.15, Demand: model.DemandMedium},
		{Name: "★ Hand Wraps | Cobalt Skulls", HashName: "★ Hand Wraps | Cobalt Skulls (Field-Tested)", BasePrice: 135, Volatility: 0.19, Demand: model.DemandMedium},
	}},
}
