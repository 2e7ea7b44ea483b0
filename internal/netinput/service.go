package netinput

import (
	"context"

	"google.golang.org/grpc"
)

// serviceName is the gRPC service path every InputMessage/Ack call is
// registered and dialed under.
const serviceName = "antares.netinput.InputService"

// InputServer is implemented by whatever owns the engine.Game a client's
// input should reach (see server.go's gameInputServer).
type InputServer interface {
	SubmitInput(context.Context, *InputMessage) (*Ack, error)
	StreamInput(InputService_StreamInputServer) error
}

// InputService_StreamInputServer is the server-side view of the
// client-streaming StreamInput RPC: the server reads InputMessages until
// the client half-closes, then sends one final Ack.
type InputService_StreamInputServer interface {
	Recv() (*InputMessage, error)
	SendAndClose(*Ack) error
	grpc.ServerStream
}

type inputServiceStreamInputServer struct {
	grpc.ServerStream
}

func (s *inputServiceStreamInputServer) Recv() (*InputMessage, error) {
	var m InputMessage
	if err := s.ServerStream.RecvMsg(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *inputServiceStreamInputServer) SendAndClose(a *Ack) error {
	return s.ServerStream.SendMsg(a)
}

func submitInputHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InputMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InputServer).SubmitInput(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/SubmitInput"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InputServer).SubmitInput(ctx, req.(*InputMessage))
	}
	return interceptor(ctx, in, info, handler)
}

func streamInputHandler(srv any, stream grpc.ServerStream) error {
	return srv.(InputServer).StreamInput(&inputServiceStreamInputServer{ServerStream: stream})
}

// ServiceDesc is the hand-written equivalent of what protoc-gen-go-grpc
// would emit from a .proto file, describing InputService's two methods
// over the gob codec registered in codec.go.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*InputServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitInput",
			Handler:    submitInputHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamInput",
			Handler:       streamInputHandler,
			ClientStreams: true,
		},
	},
	Metadata: "antares/netinput.proto",
}

// RegisterInputServer registers srv on s.
func RegisterInputServer(s grpc.ServiceRegistrar, srv InputServer) {
	s.RegisterService(&ServiceDesc, srv)
}
