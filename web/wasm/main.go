//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-estimate/internal/webdemo"
)

var (
	engine = webdemo.NewEngine()
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("calculate", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.ValueOf(webdemo.ResultFields(engine.Calculate(nil)))
		}
		if len(args) > 1 && args[1].Truthy() {
			if err := engine.SetSettings(settingsFrom(args[1])); err != nil {
				return err.Error()
			}
		}
		arr := args[0]
		items := make([]webdemo.ItemParams, arr.Length())
		for i := range items {
			item := arr.Index(i)
			items[i] = webdemo.ItemParams{
				Quantity:        number(item, "quantity"),
				Direct:          number(item, "direct"),
				Labor:           number(item, "labor"),
				MachineOperator: number(item, "machineOperator"),
				Material:        number(item, "material"),
				Machine:         number(item, "machine"),
			}
		}
		return js.ValueOf(webdemo.ResultFields(engine.Calculate(items)))
	}))

	api.Set("calculateItems", export(func(args []js.Value) any {
		if len(args) < 3 {
			return js.Global().Get("Float64Array").New(0)
		}
		out, err := engine.CalculateItems(floats(args[0]), floats(args[1]), floats(args[2]))
		if err != nil {
			return err.Error()
		}
		arr := js.Global().Get("Float64Array").New(len(out))
		for i, v := range out {
			arr.SetIndex(i, v)
		}
		return arr
	}))

	api.Set("setSettings", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		if err := engine.SetSettings(settingsFrom(args[0])); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("defaultSettings", export(func(args []js.Value) any {
		return js.ValueOf(webdemo.SettingsFields(webdemo.NewEngine().Settings()))
	}))

	api.Set("tier", export(func(args []js.Value) any {
		return engine.Tier()
	}))

	js.Global().Set("estimate", api)
	select {}
}

// settingsFrom reads a settings object, keeping current values for missing
// fields.
func settingsFrom(v js.Value) webdemo.SettingsParams {
	cur := engine.Settings()
	p := webdemo.SettingsParams{
		OverheadRate: cur.OverheadRate,
		ProfitRate:   cur.ProfitRate,
		VATRate:      cur.VATRate,
		Index:        cur.Index,
	}
	if f := v.Get("overheadRate"); f.Type() == js.TypeNumber {
		p.OverheadRate = f.Float()
	}
	if f := v.Get("profitRate"); f.Type() == js.TypeNumber {
		p.ProfitRate = f.Float()
	}
	if f := v.Get("vatRate"); f.Type() == js.TypeNumber {
		p.VATRate = f.Float()
	}
	if f := v.Get("index"); f.Type() == js.TypeNumber {
		p.Index = f.Float()
	}
	return p
}

func number(obj js.Value, key string) float64 {
	v := obj.Get(key)
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Float()
}

func floats(arr js.Value) []float64 {
	out := make([]float64, arr.Length())
	for i := range out {
		out[i] = arr.Index(i).Float()
	}
	return out
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
