// Package preset provides named field constraints.
//
// A Preset bundles the bounds and digit limit of a kind of field, so forms
// ask for "money" instead of repeating min=0 and digits=2. Presets come
// from a Source, either in memory or a YAML file, and are validated when a
// Service loads them:
//
//	svc, err := preset.NewService(ctx, preset.NewYAMLSource("presets.yaml"))
//	p, err := svc.Get("money")
//	r := decimalinput.Parse(raw, decimalinput.WithOptions(p.Options()))
package preset
