package server

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/glorpus-work/genhub/pkg/orchestrator"
	"github.com/glorpus-work/genhub/pkg/rpc"
)

// Methods the UI calls.
const (
	MethodGetFilteredGenerators = "getFilteredGenerators"
	MethodInstall               = "install"
	MethodUninstall             = "uninstall"
	MethodIsInstalled           = "isInstalled"
	MethodGetRecommendedQuery   = "getRecommendedQuery"
	MethodDoGeneratorInstall    = "doGeneratorInstall"
	MethodDoGeneratorDone       = "doGeneratorDone"
)

// Bind registers the session operations on conn. Operation failures are reported
// to the user through the notifier and surface as null or false results; only
// malformed requests become RPC errors.
func Bind(conn *rpc.Conn, s *orchestrator.Session) {
	conn.Register(MethodGetFilteredGenerators, func(ctx context.Context, p rpc.Params) (any, error) {
		var query, author string
		if err := p.Decode(0, &query); err != nil {
			return nil, err
		}
		if err := p.Decode(1, &author); err != nil {
			return nil, err
		}
		result, err := s.Search(ctx, query, author)
		if err != nil {
			return nil, nil
		}
		return result.Tuple(), nil
	})

	conn.Register(MethodInstall, func(ctx context.Context, p rpc.Params) (any, error) {
		gen, err := descriptor(p)
		if err != nil {
			return nil, err
		}
		return outcome(s.Install(ctx, gen))
	})

	conn.Register(MethodUninstall, func(ctx context.Context, p rpc.Params) (any, error) {
		gen, err := descriptor(p)
		if err != nil {
			return nil, err
		}
		return outcome(s.Uninstall(ctx, gen))
	})

	conn.Register(MethodIsInstalled, func(ctx context.Context, p rpc.Params) (any, error) {
		var gen model.GeneratorDescriptor
		if err := p.Decode(0, &gen); err != nil {
			return nil, err
		}
		ok, err := s.IsInstalled(ctx, gen)
		if err != nil {
			logger.Debug("isInstalled failed", logger.Fields{"generator": gen.Name(), "error": err.Error()})
			return false, nil
		}
		return ok, nil
	})

	conn.Register(MethodGetRecommendedQuery, func(context.Context, rpc.Params) (any, error) {
		return s.RecommendedQuery(), nil
	})

	conn.Register(MethodDoGeneratorInstall, func(context.Context, rpc.Params) (any, error) {
		s.Events().DoGeneratorInstall()
		return nil, nil
	})

	conn.Register(MethodDoGeneratorDone, func(_ context.Context, p rpc.Params) (any, error) {
		var (
			success             bool
			message, targetPath string
		)
		if err := p.Decode(0, &success); err != nil {
			return nil, err
		}
		if err := p.Decode(1, &message); err != nil {
			return nil, err
		}
		if err := p.Decode(2, &targetPath); err != nil {
			return nil, err
		}
		s.Events().DoGeneratorDone(success, message, targetPath)
		return nil, nil
	})
}

func descriptor(p rpc.Params) (model.GeneratorDescriptor, error) {
	var gen model.GeneratorDescriptor
	if err := p.Decode(0, &gen); err != nil {
		return gen, err
	}
	if err := gen.Validate(); err != nil {
		return gen, fmt.Errorf("%w: %w", errors.ErrInvalidParams, err)
	}
	return gen, nil
}

// outcome maps an operation error to its boolean result. The user has already been
// told about the failure.
func outcome(err error) (any, error) {
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, errors.ErrInvalidGeneratorName) {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidParams, err)
	}
	return false, nil
}
