// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: mirror.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Timestamp is a consensus instant with nanosecond resolution.
type Timestamp struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Seconds       int64                  `protobuf:"varint,1,opt,name=seconds,proto3" json:"seconds,omitempty"`
	Nanos         int32                  `protobuf:"varint,2,opt,name=nanos,proto3" json:"nanos,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Timestamp) Reset() {
	*x = Timestamp{}
	mi := &file_mirror_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Timestamp) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Timestamp) ProtoMessage() {}

func (x *Timestamp) ProtoReflect() protoreflect.Message {
	mi := &file_mirror_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Timestamp.ProtoReflect.Descriptor instead.
func (*Timestamp) Descriptor() ([]byte, []int) {
	return file_mirror_proto_rawDescGZIP(), []int{0}
}

func (x *Timestamp) GetSeconds() int64 {
	if x != nil {
		return x.Seconds
	}
	return 0
}

func (x *Timestamp) GetNanos() int32 {
	if x != nil {
		return x.Nanos
	}
	return 0
}

// ConsensusTopicQuery subscribes to a topic from a start instant.
// Messages with consensus_timestamp > consensus_start_time are delivered
// in consensus order. limit of zero means unbounded.
type ConsensusTopicQuery struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	TopicId            string                 `protobuf:"bytes,1,opt,name=topic_id,json=topicId,proto3" json:"topic_id,omitempty"`
	ConsensusStartTime *Timestamp             `protobuf:"bytes,2,opt,name=consensus_start_time,json=consensusStartTime,proto3" json:"consensus_start_time,omitempty"`
	Limit              uint64                 `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ConsensusTopicQuery) Reset() {
	*x = ConsensusTopicQuery{}
	mi := &file_mirror_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsensusTopicQuery) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsensusTopicQuery) ProtoMessage() {}

func (x *ConsensusTopicQuery) ProtoReflect() protoreflect.Message {
	mi := &file_mirror_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsensusTopicQuery.ProtoReflect.Descriptor instead.
func (*ConsensusTopicQuery) Descriptor() ([]byte, []int) {
	return file_mirror_proto_rawDescGZIP(), []int{1}
}

func (x *ConsensusTopicQuery) GetTopicId() string {
	if x != nil {
		return x.TopicId
	}
	return ""
}

func (x *ConsensusTopicQuery) GetConsensusStartTime() *Timestamp {
	if x != nil {
		return x.ConsensusStartTime
	}
	return nil
}

func (x *ConsensusTopicQuery) GetLimit() uint64 {
	if x != nil {
		return x.Limit
	}
	return 0
}

// ConsensusTopicResponse is a single message that reached consensus.
type ConsensusTopicResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	TopicId            string                 `protobuf:"bytes,1,opt,name=topic_id,json=topicId,proto3" json:"topic_id,omitempty"`
	ConsensusTimestamp *Timestamp             `protobuf:"bytes,2,opt,name=consensus_timestamp,json=consensusTimestamp,proto3" json:"consensus_timestamp,omitempty"`
	Message            []byte                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	RunningHash        []byte                 `protobuf:"bytes,4,opt,name=running_hash,json=runningHash,proto3" json:"running_hash,omitempty"`
	RunningHashVersion uint64                 `protobuf:"varint,5,opt,name=running_hash_version,json=runningHashVersion,proto3" json:"running_hash_version,omitempty"`
	SequenceNumber     uint64                 `protobuf:"varint,6,opt,name=sequence_number,json=sequenceNumber,proto3" json:"sequence_number,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ConsensusTopicResponse) Reset() {
	*x = ConsensusTopicResponse{}
	mi := &file_mirror_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsensusTopicResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsensusTopicResponse) ProtoMessage() {}

func (x *ConsensusTopicResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mirror_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsensusTopicResponse.ProtoReflect.Descriptor instead.
func (*ConsensusTopicResponse) Descriptor() ([]byte, []int) {
	return file_mirror_proto_rawDescGZIP(), []int{2}
}

func (x *ConsensusTopicResponse) GetTopicId() string {
	if x != nil {
		return x.TopicId
	}
	return ""
}

func (x *ConsensusTopicResponse) GetConsensusTimestamp() *Timestamp {
	if x != nil {
		return x.ConsensusTimestamp
	}
	return nil
}

func (x *ConsensusTopicResponse) GetMessage() []byte {
	if x != nil {
		return x.Message
	}
	return nil
}

func (x *ConsensusTopicResponse) GetRunningHash() []byte {
	if x != nil {
		return x.RunningHash
	}
	return nil
}

func (x *ConsensusTopicResponse) GetRunningHashVersion() uint64 {
	if x != nil {
		return x.RunningHashVersion
	}
	return 0
}

func (x *ConsensusTopicResponse) GetSequenceNumber() uint64 {
	if x != nil {
		return x.SequenceNumber
	}
	return 0
}

var File_mirror_proto protoreflect.FileDescriptor

const file_mirror_proto_rawDesc = "" +
	"\n" +
	"\fmirror.proto\x12\x06mirror\";\n" +
	"\tTimestamp\x12\x18\n" +
	"\aseconds\x18\x01 \x01(\x03R\aseconds\x12\x14\n" +
	"\x05nanos\x18\x02 \x01(\x05R\x05nanos\"\x8b\x01\n" +
	"\x13ConsensusTopicQuery\x12\x19\n" +
	"\btopic_id\x18\x01 \x01(\tR\atopicId\x12C\n" +
	"\x14consensus_start_time\x18\x02 \x01(\v2\x11.mirror.TimestampR\x12consensusStartTime\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x04R\x05limit\"\x8f\x02\n" +
	"\x16ConsensusTopicResponse\x12\x19\n" +
	"\btopic_id\x18\x01 \x01(\tR\atopicId\x12B\n" +
	"\x13consensus_timestamp\x18\x02 \x01(\v2\x11.mirror.TimestampR\x12consensusTimestamp\x12\x18\n" +
	"\amessage\x18\x03 \x01(\fR\amessage\x12!\n" +
	"\frunning_hash\x18\x04 \x01(\fR\vrunningHash\x120\n" +
	"\x14running_hash_version\x18\x05 \x01(\x04R\x12runningHashVersion\x12'\n" +
	"\x0fsequence_number\x18\x06 \x01(\x04R\x0esequenceNumber2c\n" +
	"\x10ConsensusService\x12O\n" +
	"\x0eSubscribeTopic\x12\x1b.mirror.ConsensusTopicQuery\x1a\x1e.mirror.ConsensusTopicResponse0\x01B(Z&github.com/agentmesh/hcs-indexer/protob\x06proto3"

var (
	file_mirror_proto_rawDescOnce sync.Once
	file_mirror_proto_rawDescData []byte
)

func file_mirror_proto_rawDescGZIP() []byte {
	file_mirror_proto_rawDescOnce.Do(func() {
		file_mirror_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_mirror_proto_rawDesc), len(file_mirror_proto_rawDesc)))
	})
	return file_mirror_proto_rawDescData
}

var file_mirror_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_mirror_proto_goTypes = []any{
	(*Timestamp)(nil),              // 0: mirror.Timestamp
	(*ConsensusTopicQuery)(nil),    // 1: mirror.ConsensusTopicQuery
	(*ConsensusTopicResponse)(nil), // 2: mirror.ConsensusTopicResponse
}
var file_mirror_proto_depIdxs = []int32{
	0, // 0: mirror.ConsensusTopicQuery.consensus_start_time:type_name -> mirror.Timestamp
	0, // 1: mirror.ConsensusTopicResponse.consensus_timestamp:type_name -> mirror.Timestamp
	1, // 2: mirror.ConsensusService.SubscribeTopic:input_type -> mirror.ConsensusTopicQuery
	2, // 3: mirror.ConsensusService.SubscribeTopic:output_type -> mirror.ConsensusTopicResponse
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_mirror_proto_init() }
func file_mirror_proto_init() {
	if File_mirror_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_mirror_proto_rawDesc), len(file_mirror_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_mirror_proto_goTypes,
		DependencyIndexes: file_mirror_proto_depIdxs,
		MessageInfos:      file_mirror_proto_msgTypes,
	}.Build()
	File_mirror_proto = out.File
	file_mirror_proto_goTypes = nil
	file_mirror_proto_depIdxs = nil
}
