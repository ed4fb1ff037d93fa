//go:build (js || wasm) && dev
// +build js wasm
// +build dev

package runtime

// With -tags dev a panicking lifecycle hook stops the app, so the stack
// trace points straight at the component that failed.

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	initializer.OnInit()
}

func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	receiver.OnParametersSet()
}

func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	cleaner.OnDestroy()
}
