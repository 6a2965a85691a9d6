package config

import (
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// optionalField declares a proto2 optional field. `typeName` is only used by message and enum fields.
func optionalField(name string, number int32, fieldType descriptorpb.FieldDescriptorProto_Type,
	typeName string) *descriptorpb.FieldDescriptorProto {
	field := &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   fieldType.Enum(),
	}
	if typeName != "" {
		field.TypeName = proto.String(typeName)
	}
	return field
}

// configSchema is the schema of the config file, equivalent to:
//
//	syntax = "proto2";
//	package chain;
//	enum LogHandlerType { json = 0; text = 1; }
//	message Logging {
//	  optional string log_level = 1;
//	  optional LogHandlerType log_handler_type = 2;
//	}
//	message Config {
//	  optional string demo = 1;
//	  optional Logging logging = 2;
//	}
//
// Each scalar field sets the command line flag carrying the field's name. Message fields group flags together.
var configSchema = sync.OnceValues(func() (protoreflect.MessageDescriptor, error) {
	file, err := protodesc.NewFile(&descriptorpb.FileDescriptorProto{
		Name:    proto.String("chain/config.proto"),
		Package: proto.String("chain"),
		Syntax:  proto.String("proto2"),
		EnumType: []*descriptorpb.EnumDescriptorProto{{
			Name: proto.String("LogHandlerType"),
			Value: []*descriptorpb.EnumValueDescriptorProto{
				{Name: proto.String("json"), Number: proto.Int32(0)},
				{Name: proto.String("text"), Number: proto.Int32(1)},
			},
		}},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Logging"),
				Field: []*descriptorpb.FieldDescriptorProto{
					optionalField("log_level", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
					optionalField("log_handler_type", 2, descriptorpb.FieldDescriptorProto_TYPE_ENUM,
						".chain.LogHandlerType"),
				},
			},
			{
				Name: proto.String("Config"),
				Field: []*descriptorpb.FieldDescriptorProto{
					optionalField("demo", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
					optionalField("logging", 2, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".chain.Logging"),
				},
			},
		},
	}, nil /*resolver*/)
	if err != nil {
		return nil, err
	}
	return file.Messages().ByName("Config"), nil
})
