//go:build js && wasm

// Command ucum-wasm is the WebAssembly entry point for the UCUM engine. It
// exposes validate/convert/analyze to JavaScript as window.UCUM.
//
// Build with:
//   GOOS=js GOARCH=wasm go build -o ucum.wasm ./cmd/ucum-wasm
//
// Usage from JavaScript:
//   <script src="wasm_exec.js"></script>
//   <script>
//     const go = new Go();
//     WebAssembly.instantiateStreaming(fetch("ucum.wasm"), go.importObject)
//       .then((result) => {
//         go.run(result.instance);
//         window.UCUM.convert(100, "kPa", "mm[Hg]");
//       });
//   </script>
package main

import (
	"syscall/js"

	"github.com/ucum-go/ucum/pkg/ucum"
)

var engine *ucum.Engine

func main() {
	done := make(chan struct{})

	var err error
	engine, err = ucum.New()
	if err != nil {
		js.Global().Get("console").Call("error", "ucum: failed to load unit table: "+err.Error())
		return
	}

	api := js.Global().Get("Object").New()
	api.Set("validate", js.FuncOf(jsValidate))
	api.Set("convert", js.FuncOf(jsConvert))
	api.Set("analyze", js.FuncOf(jsAnalyze))
	js.Global().Set("UCUM", api)

	js.Global().Get("console").Call("log", "UCUM WASM module initialized")
	<-done
}

func jsValidate(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return jsError("validate requires one argument: expression")
	}
	if err := engine.Validate(args[0].String()); err != nil {
		return jsError(err.Error())
	}
	return true
}

func jsConvert(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return jsError("convert requires three arguments: value, from, to")
	}
	value := args[0].Float()
	result, err := engine.Convert(value, args[1].String(), args[2].String())
	if err != nil {
		return jsError(err.Error())
	}
	return result
}

func jsAnalyze(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return jsError("analyze requires one argument: expression")
	}
	a, err := engine.Analyze(args[0].String())
	if err != nil {
		return jsError(err.Error())
	}
	out := js.Global().Get("Object").New()
	out.Set("canonicalText", a.CanonicalText)
	out.Set("factor", a.Factor)
	out.Set("isSpecial", a.IsSpecial)
	out.Set("isArbitrary", a.IsArbitrary)
	return out
}

func jsError(msg string) js.Value {
	out := js.Global().Get("Object").New()
	out.Set("error", msg)
	return out
}
