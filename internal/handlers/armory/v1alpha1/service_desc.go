package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "armory.v1alpha1.ArmoryService"

// Full method names
const (
	MethodCreateHero       = "/" + ServiceName + "/CreateHero"
	MethodGetHero          = "/" + ServiceName + "/GetHero"
	MethodListHeroes       = "/" + ServiceName + "/ListHeroes"
	MethodEquipHero        = "/" + ServiceName + "/EquipHero"
	MethodRemoveEquipment  = "/" + ServiceName + "/RemoveEquipment"
	MethodGetEquipmentTier = "/" + ServiceName + "/GetEquipmentTier"
)

// ArmoryServiceServer is the server API for the armory service.
// Requests and responses are google.protobuf.Struct documents.
type ArmoryServiceServer interface {
	CreateHero(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetHero(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListHeroes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipHero(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveEquipment(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEquipmentTier(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(ArmoryServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ArmoryServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ArmoryServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ArmoryServiceDesc is the grpc.ServiceDesc for the armory service
var ArmoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArmoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateHero", Handler: unaryHandler(MethodCreateHero, ArmoryServiceServer.CreateHero)},
		{MethodName: "GetHero", Handler: unaryHandler(MethodGetHero, ArmoryServiceServer.GetHero)},
		{MethodName: "ListHeroes", Handler: unaryHandler(MethodListHeroes, ArmoryServiceServer.ListHeroes)},
		{MethodName: "EquipHero", Handler: unaryHandler(MethodEquipHero, ArmoryServiceServer.EquipHero)},
		{MethodName: "RemoveEquipment", Handler: unaryHandler(MethodRemoveEquipment, ArmoryServiceServer.RemoveEquipment)},
		{MethodName: "GetEquipmentTier", Handler: unaryHandler(MethodGetEquipmentTier, ArmoryServiceServer.GetEquipmentTier)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "armory/v1alpha1/armory.proto",
}

// RegisterArmoryServiceServer registers the armory service on a gRPC server
func RegisterArmoryServiceServer(s grpc.ServiceRegistrar, srv ArmoryServiceServer) {
	s.RegisterService(&ArmoryServiceDesc, srv)
}

// ArmoryServiceClient is the client API for the armory service
type ArmoryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewArmoryServiceClient creates a client over a connection
func NewArmoryServiceClient(cc grpc.ClientConnInterface) *ArmoryServiceClient {
	return &ArmoryServiceClient{cc: cc}
}

// Call invokes a unary armory method by full method name
func (c *ArmoryServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
