/*
Package overlay drives Dear ImGui (via inkyblackness/imgui-go) from a game
host, with property-backed elements instead of free variables.

# Overview

The overlay is frame-driven and single-threaded. A Manager owns a set of
root elements and a Renderer (the engine-specific backend); each frame the
host calls Manager.Render, which begins an imgui frame, draws every visible
element, captures imgui's input-capture flags, and submits the generated
draw data. Elements embed Base, which stores widget values in a property
store with change notification, so game code can observe UI edits without
polling.

# Quick Start

	// Setup (after creating the imgui context and GL window)
	driver, _ := opengl.NewDriver(window)
	manager, _ := overlay.NewManager(driver, overlay.WithTheme(overlay.GTATheme()))
	manager.Add(newDebugWindow())

	// Game loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    manager.Render(deltaTime)
	    window.SwapBuffers()

	    if !manager.AcceptingMouseInput() {
	        // mouse belongs to the game this frame
	    }
	}

# Elements

An element is any type with a Draw method issuing imgui calls and a Visible
method; embedding Base provides visibility, the property store, and
property-backed widget helpers:

	type debugWindow struct {
	    overlay.Base
	}

	func newDebugWindow() *debugWindow {
	    w := &debugWindow{}
	    w.DeclareText("Name", 32) // text-backed property, 32-byte buffer
	    return w
	}

	func (w *debugWindow) Draw() {
	    if imgui.BeginV("Debug", nil, imgui.WindowFlagsNone) {
	        w.TextInput("Name", "Name")
	        w.Checkbox("God mode", "GodMode")
	    }
	    imgui.End()
	}

Property reads and writes go through Get and Set, which fire the element's
OnChange listeners on every effective change. Text properties are backed by
a fixed-capacity buffer declared up front; values longer than the buffer
are silently truncated.

# Reentrancy

Manager.Add and Manager.Remove may be called from inside a Draw method (a
button handler opening another window, for example). Changes queue up and
take effect at the start of the next frame; the set of elements being
rendered never mutates mid-frame.
*/
package overlay
