// Package specfile loads layout specs from TOML, YAML and JSON files.
//
// A spec file names an alignment and lists rows of item sizes. Sizes are
// either names accepted by layout.ParseItemSize ("small", "normal") or plain
// fractions. An optional config section overrides the engine's spacing policy:
//
//	alignment = "right"
//	container_width = 320
//	rows = [
//	  ["small", "normal", "normal"],
//	  ["small", 0.25, 0.25],
//	]
//
//	[config]
//	item_spacing = 16
package specfile
