package netinput

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

// Client is a thin wrapper over a grpc.ClientConn dialed against an
// InputService server, forcing every call through the gob codec
// registered in codec.go rather than grpc's default proto codec.
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to target.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(grpc.CallContentSubtype(gobCodecName)))
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("netinput: dial %s: %w", target, err)
	}
	return &Client{conn: conn}, nil
}

// Close tears down the underlying connection.
func (c *Client) Close() error { return c.conn.Close() }

// SubmitInput sends one input sample and waits for its ack.
func (c *Client) SubmitInput(ctx context.Context, msg *InputMessage) (*Ack, error) {
	ack := new(Ack)
	err := c.conn.Invoke(ctx, serviceName+"/SubmitInput", msg, ack)
	if err != nil {
		return nil, fmt.Errorf("netinput: SubmitInput: %w", err)
	}
	return ack, nil
}

// StreamInput opens a client-streaming call a caller can push repeated
// InputMessages into, useful for a render/input loop that samples keys
// every frame rather than once per RPC.
func (c *Client) StreamInput(ctx context.Context) (InputService_StreamInputClient, error) {
	stream, err := c.conn.NewStream(ctx, &ServiceDesc.Streams[0], serviceName+"/StreamInput")
	if err != nil {
		return nil, fmt.Errorf("netinput: StreamInput: %w", err)
	}
	return &inputServiceStreamInputClient{ClientStream: stream}, nil
}

// InputService_StreamInputClient is the client-side view of StreamInput.
type InputService_StreamInputClient interface {
	Send(*InputMessage) error
	CloseAndRecv() (*Ack, error)
	grpc.ClientStream
}

type inputServiceStreamInputClient struct {
	grpc.ClientStream
}

func (c *inputServiceStreamInputClient) Send(msg *InputMessage) error {
	return c.ClientStream.SendMsg(msg)
}

func (c *inputServiceStreamInputClient) CloseAndRecv() (*Ack, error) {
	if err := c.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	ack := new(Ack)
	if err := c.ClientStream.RecvMsg(ack); err != nil {
		return nil, err
	}
	return ack, nil
}
