// stargatectl は stargate の gRPC API を呼び出すコマンドラインクライアントです。
//
//	stargatectl [--addr host:port] <command> [flags]
//
// コマンド: create-person, rename-person, get-person, list-people,
// add-duty, list-duties, rebuild-status
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	stargatev1 "github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/gen/stargate/v1"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/interceptor"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type clients struct {
	people stargatev1.PersonServiceClient
	duties stargatev1.AstronautDutyServiceClient
}

type command struct {
	usage string
	flags func(fs *pflag.FlagSet) func(ctx context.Context, c clients) (proto.Message, error)
}

var commands = map[string]command{
	"create-person": {
		usage: "--name NAME",
		flags: func(fs *pflag.FlagSet) func(context.Context, clients) (proto.Message, error) {
			name := fs.String("name", "", "person name")
			return func(ctx context.Context, c clients) (proto.Message, error) {
				return c.people.CreatePerson(ctx, &stargatev1.CreatePersonRequest{Name: *name})
			}
		},
	},
	"rename-person": {
		usage: "--name CURRENT --new-name NEW",
		flags: func(fs *pflag.FlagSet) func(context.Context, clients) (proto.Message, error) {
			current := fs.String("name", "", "current person name")
			next := fs.String("new-name", "", "new person name")
			return func(ctx context.Context, c clients) (proto.Message, error) {
				return c.people.RenamePerson(ctx, &stargatev1.RenamePersonRequest{CurrentName: *current, NewName: *next})
			}
		},
	},
	"get-person": {
		usage: "--name NAME",
		flags: func(fs *pflag.FlagSet) func(context.Context, clients) (proto.Message, error) {
			name := fs.String("name", "", "person name")
			return func(ctx context.Context, c clients) (proto.Message, error) {
				return c.people.GetPerson(ctx, &stargatev1.GetPersonRequest{Name: *name})
			}
		},
	},
	"list-people": {
		usage: "[--page-size N] [--page-token TOKEN]",
		flags: func(fs *pflag.FlagSet) func(context.Context, clients) (proto.Message, error) {
			size := fs.Int32("page-size", 0, "maximum number of people to return")
			token := fs.String("page-token", "", "token from a previous page")
			return func(ctx context.Context, c clients) (proto.Message, error) {
				return c.people.ListPeople(ctx, &stargatev1.ListPeopleRequest{PageSize: *size, PageToken: *token})
			}
		},
	},
	"add-duty": {
		usage: "--name NAME --rank RANK --title TITLE --start YYYY-MM-DD",
		flags: func(fs *pflag.FlagSet) func(context.Context, clients) (proto.Message, error) {
			name := fs.String("name", "", "person name")
			rank := fs.String("rank", "", "rank held during the duty")
			title := fs.String("title", "", "duty title")
			start := fs.String("start", "", "duty start date (YYYY-MM-DD)")
			return func(ctx context.Context, c clients) (proto.Message, error) {
				return c.duties.CreateAstronautDuty(ctx, &stargatev1.CreateAstronautDutyRequest{
					Name:          *name,
					Rank:          *rank,
					DutyTitle:     *title,
					DutyStartDate: *start,
				})
			}
		},
	},
	"list-duties": {
		usage: "--name NAME",
		flags: func(fs *pflag.FlagSet) func(context.Context, clients) (proto.Message, error) {
			name := fs.String("name", "", "person name")
			return func(ctx context.Context, c clients) (proto.Message, error) {
				return c.duties.ListAstronautDuties(ctx, &stargatev1.ListAstronautDutiesRequest{Name: *name})
			}
		},
	},
	"rebuild-status": {
		usage: "--name NAME",
		flags: func(fs *pflag.FlagSet) func(context.Context, clients) (proto.Message, error) {
			name := fs.String("name", "", "person name")
			return func(ctx context.Context, c clients) (proto.Message, error) {
				return c.duties.RebuildAstronautStatus(ctx, &stargatev1.RebuildAstronautStatusRequest{Name: *name})
			}
		},
	},
}

func run(ctx context.Context, args []string, out io.Writer) error {
	global := pflag.NewFlagSet("stargatectl", pflag.ContinueOnError)
	global.SetInterspersed(false)
	addr := global.String("addr", envOr("STARGATE_ADDR", "localhost:50051"), "gRPC server address")
	timeout := global.Duration("timeout", 10*time.Second, "per-call timeout")
	requestID := global.String("request-id", "", "request id sent as "+interceptor.RequestIDHeader)
	global.Usage = func() { printUsage(global) }
	if err := global.Parse(args); err != nil {
		return err
	}

	if global.NArg() == 0 {
		printUsage(global)
		return errors.New("command is required")
	}

	name := global.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		printUsage(global)
		return fmt.Errorf("unknown command %q", name)
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	call := cmd.flags(fs)
	if err := fs.Parse(global.Args()[1:]); err != nil {
		return err
	}

	conn, err := grpc.NewClient(*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return fmt.Errorf("dial %s: %w", *addr, err)
	}
	defer func() { _ = conn.Close() }()

	callCtx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()
	if *requestID != "" {
		callCtx = metadata.AppendToOutgoingContext(callCtx, interceptor.RequestIDHeader, *requestID)
	}

	resp, err := call(callCtx, clients{
		people: stargatev1.NewPersonServiceClient(conn),
		duties: stargatev1.NewAstronautDutyServiceClient(conn),
	})
	if err != nil {
		return err
	}

	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

func printUsage(fs *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "usage: stargatectl [global flags] <command> [flags]")
	fmt.Fprintln(os.Stderr, "\ncommands:")
	for _, name := range []string{"create-person", "rename-person", "get-person", "list-people", "add-duty", "list-duties", "rebuild-status"} {
		fmt.Fprintf(os.Stderr, "  %-15s %s\n", name, commands[name].usage)
	}
	fmt.Fprintln(os.Stderr, "\nglobal flags:")
	fs.PrintDefaults()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
