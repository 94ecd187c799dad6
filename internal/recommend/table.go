package recommend

import "github.com/psybedev/trackassist/internal/aggregator"

// table is the compile-time static finding->recommendation knowledge base,
// reproduced verbatim from original_source/src/setup_assistant/recommendations.rs
// build_recommendation_map, filtered to the 12 FindingTypes this module
// actually produces (see DESIGN.md for the 3 dropped entries:
// CornerEntryInstability, CornerExitSnapOversteer, BrakingInstability).
var table = map[aggregator.FindingType][]Recommendation{
	aggregator.CornerEntryUndersteer: {
		{
			Category:    CategoryAntiRollBar,
			Parameter:   "Front Antirollbar",
			Adjustment:  "Soften",
			Description: "Softer front anti-roll bar allows more front grip during corner entry",
			Priority:    5,
		},
		{
			Category:    CategoryBrakes,
			Parameter:   "Brake Bias",
			Adjustment:  "Move Rearward",
			Description: "Moving brake bias rearward reduces front tire load during braking",
			Priority:    4,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Front Springs",
			Adjustment:  "Soften",
			Description: "Softer front springs improve mechanical grip during turn-in",
			Priority:    4,
		},
		{
			Category:    CategoryAerodynamics,
			Parameter:   "Front Ride Height",
			Adjustment:  "Reduce",
			Description: "Lowering front ride height increases front downforce and grip",
			Priority:    3,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Rear Springs",
			Adjustment:  "Stiffen",
			Description: "Stiffer rear springs reduce rear grip, shifting balance forward",
			Priority:    3,
		},
		{
			Category:    CategoryAerodynamics,
			Parameter:   "Rear Ride Height",
			Adjustment:  "Increase",
			Description: "Raising rear ride height reduces rear downforce, shifting balance forward",
			Priority:    3,
		},
		{
			Category:    CategoryDampers,
			Parameter:   "Front Bump",
			Adjustment:  "Soften",
			Description: "Softer front bump damping allows weight transfer to front tires",
			Priority:    2,
		},
		{
			Category:    CategoryDampers,
			Parameter:   "Rear Rebound",
			Adjustment:  "Stiffen",
			Description: "Stiffer rear rebound keeps weight on front tires longer",
			Priority:    2,
		},
		{
			Category:    CategoryAlignment,
			Parameter:   "Front Toe",
			Adjustment:  "Increase Toe Out",
			Description: "Toe out improves turn-in response and front grip",
			Priority:    2,
		},
	},
	aggregator.CornerEntryOversteer: {
		{
			Category:    CategoryBrakes,
			Parameter:   "Brake Bias",
			Adjustment:  "Move Forward",
			Description: "Moving brake bias forward increases rear stability under braking",
			Priority:    5,
		},
		{
			Category:    CategoryDrivetrain,
			Parameter:   "Differential Preload",
			Adjustment:  "Increase",
			Description: "Higher preload locks differential on coast, stabilizing rear",
			Priority:    4,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Rear Springs",
			Adjustment:  "Soften",
			Description: "Softer rear springs improve rear mechanical grip",
			Priority:    4,
		},
		{
			Category:    CategoryAntiRollBar,
			Parameter:   "Front Antirollbar",
			Adjustment:  "Stiffen",
			Description: "Stiffer front anti-roll bar reduces front grip",
			Priority:    3,
		},
		{
			Category:    CategoryAerodynamics,
			Parameter:   "Rear Ride Height",
			Adjustment:  "Reduce",
			Description: "Lowering rear ride height increases rear downforce and stability",
			Priority:    3,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Front Springs",
			Adjustment:  "Stiffen",
			Description: "Stiffer front springs reduce front grip during turn-in",
			Priority:    3,
		},
		{
			Category:    CategoryAerodynamics,
			Parameter:   "Front Ride Height",
			Adjustment:  "Increase",
			Description: "Raising front ride height reduces front downforce",
			Priority:    2,
		},
		{
			Category:    CategoryDampers,
			Parameter:   "Front Bump",
			Adjustment:  "Stiffen",
			Description: "Stiffer front bump reduces weight transfer to front",
			Priority:    2,
		},
		{
			Category:    CategoryDampers,
			Parameter:   "Rear Rebound",
			Adjustment:  "Soften",
			Description: "Softer rear rebound allows rear to settle faster",
			Priority:    2,
		},
	},
	aggregator.MidCornerUndersteer: {
		{
			Category:    CategoryAntiRollBar,
			Parameter:   "Front Antirollbar",
			Adjustment:  "Soften",
			Description: "Softer front Antirollbar allows more front grip mid-corner",
			Priority:    5,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Front Springs",
			Adjustment:  "Soften",
			Description: "Softer front springs improve mechanical grip",
			Priority:    4,
		},
		{
			Category:    CategoryAntiRollBar,
			Parameter:   "Rear Antirollbar",
			Adjustment:  "Stiffen",
			Description: "Stiffer rear Antirollbar reduces rear grip, shifting balance forward",
			Priority:    4,
		},
		{
			Category:    CategoryAerodynamics,
			Parameter:   "Front Wing",
			Adjustment:  "Increase",
			Description: "More front wing increases front downforce at apex",
			Priority:    3,
		},
		{
			Category:    CategoryAerodynamics,
			Parameter:   "Splitter",
			Adjustment:  "Increase",
			Description: "More splitter increases front downforce",
			Priority:    3,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Rear Springs",
			Adjustment:  "Stiffen",
			Description: "Stiffer rear springs reduce rear grip",
			Priority:    3,
		},
		{
			Category:    CategoryAlignment,
			Parameter:   "Front Camber",
			Adjustment:  "Increase Negative",
			Description: "More negative camber improves front tire contact patch mid-corner",
			Priority:    3,
		},
	},
	aggregator.MidCornerOversteer: {
		{
			Category:    CategoryAntiRollBar,
			Parameter:   "Rear Antirollbar",
			Adjustment:  "Soften",
			Description: "Softer rear Antirollbar allows more rear grip mid-corner",
			Priority:    5,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Rear Springs",
			Adjustment:  "Soften",
			Description: "Softer rear springs improve rear mechanical grip",
			Priority:    4,
		},
		{
			Category:    CategoryAntiRollBar,
			Parameter:   "Front Antirollbar",
			Adjustment:  "Stiffen",
			Description: "Stiffer front Antirollbar reduces front grip",
			Priority:    4,
		},
		{
			Category:    CategoryAerodynamics,
			Parameter:   "Rear Wing",
			Adjustment:  "Increase",
			Description: "More rear wing increases rear downforce and stability",
			Priority:    3,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Front Springs",
			Adjustment:  "Stiffen",
			Description: "Stiffer front springs reduce front grip",
			Priority:    3,
		},
		{
			Category:    CategoryAlignment,
			Parameter:   "Rear Camber",
			Adjustment:  "Increase Negative",
			Description: "More negative camber improves rear tire contact patch",
			Priority:    3,
		},
	},
	aggregator.CornerExitUndersteer: {
		{
			Category:    CategoryDrivetrain,
			Parameter:   "Differential Preload",
			Adjustment:  "Increase",
			Description: "Higher preload helps rotate the car on power",
			Priority:    5,
		},
		{
			Category:    CategoryDrivetrain,
			Parameter:   "Differential Locking",
			Adjustment:  "Increase",
			Description: "More locking helps transfer power and rotate the car",
			Priority:    4,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Front Springs",
			Adjustment:  "Soften",
			Description: "Softer front springs improve front grip on exit",
			Priority:    4,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Rear Springs",
			Adjustment:  "Stiffen",
			Description: "Stiffer rear springs reduce rear grip, helping rotation",
			Priority:    3,
		},
		{
			Category:    CategoryDampers,
			Parameter:   "Rear Slow Bump",
			Adjustment:  "Stiffen",
			Description: "Stiffer rear slow bump reduces rear squat on acceleration",
			Priority:    2,
		},
		{
			Category:    CategoryDampers,
			Parameter:   "Front Slow Rebound",
			Adjustment:  "Soften",
			Description: "Softer front slow rebound allows front to settle faster",
			Priority:    2,
		},
	},
	aggregator.CornerExitPowerOversteer: {
		{
			Category:    CategoryElectronics,
			Parameter:   "Traction Control",
			Adjustment:  "Increase",
			Description: "Higher TC cuts power to prevent wheelspin",
			Priority:    5,
		},
		{
			Category:    CategoryDrivetrain,
			Parameter:   "Differential Preload",
			Adjustment:  "Reduce",
			Description: "Lower preload allows more rear slip, reducing wheelspin",
			Priority:    4,
		},
		{
			Category:    CategoryDrivetrain,
			Parameter:   "Differential Locking",
			Adjustment:  "Reduce",
			Description: "Less locking allows wheels to spin independently, improving traction",
			Priority:    4,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Rear Springs",
			Adjustment:  "Soften",
			Description: "Softer rear springs improve rear mechanical grip",
			Priority:    4,
		},
		{
			Category:    CategoryAerodynamics,
			Parameter:   "Rear Wing",
			Adjustment:  "Increase",
			Description: "More rear wing increases rear downforce at high speeds",
			Priority:    3,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Front Springs",
			Adjustment:  "Stiffen",
			Description: "Stiffer front springs reduce front grip, stabilizing rear",
			Priority:    3,
		},
		{
			Category:    CategoryDampers,
			Parameter:   "Rear Slow Bump",
			Adjustment:  "Soften",
			Description: "Softer rear slow bump allows rear to settle and grip",
			Priority:    2,
		},
		{
			Category:    CategoryDampers,
			Parameter:   "Front Slow Rebound",
			Adjustment:  "Stiffen",
			Description: "Stiffer front slow rebound keeps weight on rear tires",
			Priority:    2,
		},
	},
	aggregator.FrontBrakeLock: {
		{
			Category:    CategoryBrakes,
			Parameter:   "Brake Bias",
			Adjustment:  "Move Rearward",
			Description: "Moving brake bias rearward reduces front brake force",
			Priority:    5,
		},
		{
			Category:    CategoryBrakes,
			Parameter:   "Brake Pressure",
			Adjustment:  "Reduce",
			Description: "Lower brake pressure reduces overall braking force",
			Priority:    4,
		},
	},
	aggregator.RearBrakeLock: {
		{
			Category:    CategoryBrakes,
			Parameter:   "Brake Bias",
			Adjustment:  "Move Forward",
			Description: "Moving brake bias forward reduces rear brake force",
			Priority:    5,
		},
	},
	aggregator.TireOverheating: {
		{
			Category:    CategoryTireManagement,
			Parameter:   "Brake Ducts",
			Adjustment:  "Open",
			Description: "Opening brake ducts increases cooling to tires",
			Priority:    5,
		},
		{
			Category:    CategoryAntiRollBar,
			Parameter:   "Antirollbars",
			Adjustment:  "Soften",
			Description: "Softer Antirollbars reduce tire stress",
			Priority:    4,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Springs",
			Adjustment:  "Soften",
			Description: "Softer suspension reduces energy transfer to tires",
			Priority:    4,
		},
	},
	aggregator.TireCold: {
		{
			Category:    CategoryTireManagement,
			Parameter:   "Brake Ducts",
			Adjustment:  "Close",
			Description: "Closing brake ducts retains heat in tires",
			Priority:    5,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Springs",
			Adjustment:  "Stiffen",
			Description: "Stiffer suspension generates more tire heat",
			Priority:    4,
		},
		{
			Category:    CategoryAlignment,
			Parameter:   "Toe",
			Adjustment:  "Increase",
			Description: "More toe generates friction heat in tires",
			Priority:    2,
		},
	},
	aggregator.BottomingOut: {
		{
			Category:    CategorySuspension,
			Parameter:   "Ride Height",
			Adjustment:  "Increase",
			Description: "Higher ride height prevents suspension bottoming",
			Priority:    5,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Springs",
			Adjustment:  "Stiffen",
			Description: "Stiffer springs resist compression over bumps",
			Priority:    4,
		},
		{
			Category:    CategoryDampers,
			Parameter:   "Fast Bump",
			Adjustment:  "Stiffen",
			Description: "Stiffer fast bump damping controls compression on impacts",
			Priority:    2,
		},
	},
	aggregator.ExcessiveTrailbraking: {
		{
			Category:    CategoryBrakes,
			Parameter:   "Brake Bias",
			Adjustment:  "Move Forward",
			Description: "Forward brake bias reduces rear instability during trail braking",
			Priority:    5,
		},
		{
			Category:    CategoryDrivetrain,
			Parameter:   "Differential Preload",
			Adjustment:  "Increase",
			Description: "Higher preload stabilizes rear during coast",
			Priority:    4,
		},
		{
			Category:    CategorySuspension,
			Parameter:   "Rear Springs",
			Adjustment:  "Soften",
			Description: "Softer rear springs improve rear stability",
			Priority:    4,
		},
	},
}