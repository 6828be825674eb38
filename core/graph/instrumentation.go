package graph

import "go.opentelemetry.io/contrib/bridges/otelslog"

const scopeName = "github.com/koscakluka/dialogue-core/core/graph"

var logger = otelslog.NewLogger(scopeName)
