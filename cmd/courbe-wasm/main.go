//go:build js && wasm

// Command courbe-wasm draws the waveform on the page's <canvas id="draw">
// and exposes courbeRedraw(values) to page scripts.
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"courbe/internal/config"
	"courbe/internal/plot"
)

// canvasSurface forwards plot calls to a CanvasRenderingContext2D.
type canvasSurface struct {
	ctx js.Value
}

func (c canvasSurface) ClearRect(x, y, w, h float64) { c.ctx.Call("clearRect", x, y, w, h) }
func (c canvasSurface) BeginPath()                   { c.ctx.Call("beginPath") }
func (c canvasSurface) MoveTo(x, y float64)          { c.ctx.Call("moveTo", x, y) }
func (c canvasSurface) LineTo(x, y float64)          { c.ctx.Call("lineTo", x, y) }
func (c canvasSurface) Stroke()                      { c.ctx.Call("stroke") }
func (c canvasSurface) SetStrokeStyle(color string)  { c.ctx.Set("strokeStyle", color) }

// lookupSurface returns the drawing surface and size of the canvas with the
// given id, or a nil surface when the page has no such canvas.
func lookupSurface(id string) (plot.Surface, float64, float64) {
	doc := js.Global().Get("document")
	canv := doc.Call("getElementById", id)
	if canv.IsNull() || canv.IsUndefined() || canv.Get("getContext").IsUndefined() {
		return nil, 0, 0
	}
	ctx := canv.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, 0, 0
	}
	return canvasSurface{ctx: ctx}, canv.Get("width").Float(), canv.Get("height").Float()
}

// jsValues copies a JS array (or a single value) into Go values.
func jsValues(v js.Value) any {
	conv := func(e js.Value) any {
		switch e.Type() {
		case js.TypeNumber:
			return e.Float()
		case js.TypeBoolean:
			return e.Bool()
		case js.TypeString:
			return e.String()
		}
		return nil
	}
	if v.Type() != js.TypeObject || !js.Global().Get("Array").Call("isArray", v).Bool() {
		return conv(v)
	}
	out := make([]any, v.Length())
	for i := range out {
		out[i] = conv(v.Index(i))
	}
	return out
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg := config.Default()
	s, w, h := lookupSurface("draw")
	p := plot.New(s, w, h, plot.WithStrokeStyle(cfg.Canvas.StrokeStyle))
	if !p.Enabled() {
		slog.Warn("courbe: no usable #draw canvas, plotting disabled")
	}
	if err := p.Redraw(cfg.Canvas.Values); err != nil {
		slog.Error("courbe: initial redraw failed", "err", err)
	}

	js.Global().Set("courbeRedraw", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		if err := p.Redraw(jsValues(args[0])); err != nil {
			js.Global().Get("console").Call("error", err.Error())
			return err.Error()
		}
		return nil
	}))

	// keep the callback alive for the lifetime of the page
	select {}
}
