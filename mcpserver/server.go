package mcpserver

import (
	"bytes"
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/swapcheck/config"
	"github.com/dhamidi/swapcheck/format"
	"github.com/dhamidi/swapcheck/project"
	"github.com/dhamidi/swapcheck/swap"
)

var log = commonlog.GetLogger("swapcheck.mcp")

// Server exposes the swap contract check as an MCP tool.
type Server struct {
	mcp     *mcp.Server
	project *project.Project
	cfg     *config.Config
}

func New(p *project.Project, cfg *config.Config, version string) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		project: p,
		cfg:     cfg,
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "swapcheck",
		Version: version,
	}, nil)
	s.registerTools()

	return s
}

// Run serves MCP on stdin/stdout until ctx is done or the client hangs up.
func (s *Server) Run(ctx context.Context) error {
	log.Info("starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

type checkArgs struct {
	Paths      []string `json:"paths,omitempty" jsonschema:"Java files or directories to check. Defaults to the project's source roots."`
	Annotation string   `json:"annotation,omitempty" jsonschema:"Simple name of the swap annotation. Defaults to the configured annotation."`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "check_swap_contracts",
		Description: "Check that every method annotated with the swap annotation has a sibling method, named by the annotation value, with the same parameter and return types. Returns the violations as JSON.",
	}, s.checkContracts)
}

func (s *Server) checkContracts(ctx context.Context, req *mcp.CallToolRequest, args checkArgs) (*mcp.CallToolResult, any, error) {
	var files []string
	var err error
	if len(args.Paths) == 0 {
		files, err = s.project.JavaFiles()
	} else {
		files, err = s.project.Collect(args.Paths)
	}
	if err != nil {
		return errorResult(fmt.Sprintf("collecting sources: %v", err)), nil, nil
	}

	opts := append(s.cfg.ValidatorOptions(), swap.WithAnnotation(args.Annotation))
	r := swap.Validate(ctx, files, opts...)

	var buf bytes.Buffer
	if err := format.NewJSONEncoder(&buf).Encode(r); err != nil {
		return errorResult(fmt.Sprintf("encoding result: %v", err)), nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
