// Package generation defines the boundary to the external chat-completion
// service and the best-effort parser that turns raw model replies into
// structured front/back card pairs.
package generation
