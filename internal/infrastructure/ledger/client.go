package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TransferInstruction is one decoded transfer-shaped entry of a ledger
// transaction.
type TransferInstruction struct {
	Source      string
	Destination string
	Lamports    uint64
}

// Transaction is the verifier's view of a ledger lookup. Found=false means
// the reference is unknown to the ledger (possibly not propagated yet).
type Transaction struct {
	Found     bool
	Confirmed bool
	Transfers []TransferInstruction
}

// Client looks a transaction up by its reference. Implementations must
// return an error only for transport-level failures; "not found" is a
// successful lookup with Found=false.
type Client interface {
	GetTransaction(ctx context.Context, reference string) (Transaction, error)
}

type RPCClient struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewRPCClient(endpoint string, timeout time.Duration, logger *zap.Logger) *RPCClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RPCClient{
		endpoint: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result *rpcTransactionResult `json:"result"`
	Error  *rpcError             `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcTransactionResult struct {
	Meta struct {
		Err json.RawMessage `json:"err"`
	} `json:"meta"`
	Transaction struct {
		Message struct {
			Instructions []rpcInstruction `json:"instructions"`
		} `json:"message"`
	} `json:"transaction"`
}

type rpcInstruction struct {
	Program string `json:"program"`
	Parsed  *struct {
		Type string `json:"type"`
		Info struct {
			Source      string `json:"source"`
			Destination string `json:"destination"`
			Lamports    uint64 `json:"lamports"`
		} `json:"info"`
	} `json:"parsed"`
}

func (c *RPCClient) GetTransaction(ctx context.Context, reference string) (Transaction, error) {
	if c == nil || c.endpoint == "" {
		return Transaction{}, errors.New("ledger rpc client not configured")
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getTransaction",
		Params: []any{reference, map[string]any{
			"encoding":                       "jsonParsed",
			"commitment":                     "confirmed",
			"maxSupportedTransactionVersion": 0,
		}},
	})
	if err != nil {
		return Transaction{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Transaction{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Transaction{}, fmt.Errorf("ledger rpc request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return Transaction{}, fmt.Errorf("ledger rpc status %d", resp.StatusCode)
	}

	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Transaction{}, fmt.Errorf("ledger rpc decode: %w", err)
	}
	if out.Error != nil {
		return Transaction{}, fmt.Errorf("ledger rpc: %w", out.Error)
	}
	if out.Result == nil {
		return Transaction{Found: false}, nil
	}

	tx := Transaction{Found: true}
	// a transaction that executed with an error never moved funds
	tx.Confirmed = len(out.Result.Meta.Err) == 0 || string(out.Result.Meta.Err) == "null"

	for _, instr := range out.Result.Transaction.Message.Instructions {
		if instr.Parsed == nil || instr.Parsed.Type != "transfer" {
			continue
		}
		tx.Transfers = append(tx.Transfers, TransferInstruction{
			Source:      instr.Parsed.Info.Source,
			Destination: instr.Parsed.Info.Destination,
			Lamports:    instr.Parsed.Info.Lamports,
		})
	}

	c.logger.Debug("ledger lookup",
		zap.String("reference", reference),
		zap.Bool("confirmed", tx.Confirmed),
		zap.Int("transfers", len(tx.Transfers)),
	)

	return tx, nil
}
