// Package agent provides the coordinator and the domain agents it routes
// between. Domain agents are thin content generators: each builds a prompt,
// asks the configured language model, and falls back to pre-written text
// when the provider declines. All of them implement core.Agent and are only
// ever executed through a core.Invoker, which applies the responsible-AI
// validation pass.
package agent
