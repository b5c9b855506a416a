// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: underwriter/v1/underwriter.proto

package v1

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

type CreateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerEmail    string                 `protobuf:"bytes,1,opt,name=owner_email,json=ownerEmail,proto3" json:"owner_email,omitempty"`
	OwnerName     string                 `protobuf:"bytes,2,opt,name=owner_name,json=ownerName,proto3" json:"owner_name,omitempty"`
	ReportType    string                 `protobuf:"bytes,3,opt,name=report_type,json=reportType,proto3" json:"report_type,omitempty"`
	PropertyName  string                 `protobuf:"bytes,4,opt,name=property_name,json=propertyName,proto3" json:"property_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{0}
}

func (x *CreateJobRequest) GetOwnerEmail() string {
	if x != nil {
		return x.OwnerEmail
	}
	return ""
}

func (x *CreateJobRequest) GetOwnerName() string {
	if x != nil {
		return x.OwnerName
	}
	return ""
}

func (x *CreateJobRequest) GetReportType() string {
	if x != nil {
		return x.ReportType
	}
	return ""
}

func (x *CreateJobRequest) GetPropertyName() string {
	if x != nil {
		return x.PropertyName
	}
	return ""
}

type CreateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{1}
}

func (x *CreateJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CreateJobResponse) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CreateJobResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	JobStatus     string                 `protobuf:"bytes,2,opt,name=job_status,json=jobStatus,proto3" json:"job_status,omitempty"`
	Requeued      bool                   `protobuf:"varint,3,opt,name=requeued,proto3" json:"requeued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{3}
}

func (x *UploadDocumentResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *UploadDocumentResponse) GetJobStatus() string {
	if x != nil {
		return x.JobStatus
	}
	return ""
}

func (x *UploadDocumentResponse) GetRequeued() bool {
	if x != nil {
		return x.Requeued
	}
	return false
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type JobFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	DocType       string                 `protobuf:"bytes,3,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	ParseStatus   string                 `protobuf:"bytes,4,opt,name=parse_status,json=parseStatus,proto3" json:"parse_status,omitempty"`
	ParseError    string                 `protobuf:"bytes,5,opt,name=parse_error,json=parseError,proto3" json:"parse_error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobFile) Reset() {
	*x = JobFile{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobFile) ProtoMessage() {}

func (x *JobFile) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobFile.ProtoReflect.Descriptor instead.
func (*JobFile) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{5}
}

func (x *JobFile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *JobFile) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *JobFile) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *JobFile) GetParseStatus() string {
	if x != nil {
		return x.ParseStatus
	}
	return ""
}

func (x *JobFile) GetParseError() string {
	if x != nil {
		return x.ParseError
	}
	return ""
}

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	ReportType    string                 `protobuf:"bytes,4,opt,name=report_type,json=reportType,proto3" json:"report_type,omitempty"`
	PropertyName  string                 `protobuf:"bytes,5,opt,name=property_name,json=propertyName,proto3" json:"property_name,omitempty"`
	ErrorCode     string                 `protobuf:"bytes,6,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt     string                 `protobuf:"bytes,9,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt   string                 `protobuf:"bytes,10,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	FailedAt      string                 `protobuf:"bytes,11,opt,name=failed_at,json=failedAt,proto3" json:"failed_at,omitempty"`
	Files         []*JobFile             `protobuf:"bytes,12,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{6}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetReportType() string {
	if x != nil {
		return x.ReportType
	}
	return ""
}

func (x *Job) GetPropertyName() string {
	if x != nil {
		return x.PropertyName
	}
	return ""
}

func (x *Job) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *Job) GetFailedAt() string {
	if x != nil {
		return x.FailedAt
	}
	return ""
}

func (x *Job) GetFiles() []*JobFile {
	if x != nil {
		return x.Files
	}
	return nil
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{7}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListArtifactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArtifactsRequest) Reset() {
	*x = ListArtifactsRequest{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArtifactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArtifactsRequest) ProtoMessage() {}

func (x *ListArtifactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArtifactsRequest.ProtoReflect.Descriptor instead.
func (*ListArtifactsRequest) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{8}
}

func (x *ListArtifactsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ListArtifactsRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

type Artifact struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type           string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	PayloadJson    string                 `protobuf:"bytes,3,opt,name=payload_json,json=payloadJson,proto3" json:"payload_json,omitempty"`
	StorageLocator string                 `protobuf:"bytes,4,opt,name=storage_locator,json=storageLocator,proto3" json:"storage_locator,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Artifact) Reset() {
	*x = Artifact{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Artifact) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Artifact) ProtoMessage() {}

func (x *Artifact) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Artifact.ProtoReflect.Descriptor instead.
func (*Artifact) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{9}
}

func (x *Artifact) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Artifact) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Artifact) GetPayloadJson() string {
	if x != nil {
		return x.PayloadJson
	}
	return ""
}

func (x *Artifact) GetStorageLocator() string {
	if x != nil {
		return x.StorageLocator
	}
	return ""
}

func (x *Artifact) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListArtifactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Artifacts     []*Artifact            `protobuf:"bytes,1,rep,name=artifacts,proto3" json:"artifacts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArtifactsResponse) Reset() {
	*x = ListArtifactsResponse{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArtifactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArtifactsResponse) ProtoMessage() {}

func (x *ListArtifactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArtifactsResponse.ProtoReflect.Descriptor instead.
func (*ListArtifactsResponse) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{10}
}

func (x *ListArtifactsResponse) GetArtifacts() []*Artifact {
	if x != nil {
		return x.Artifacts
	}
	return nil
}

type RunDriverRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunDriverRequest) Reset() {
	*x = RunDriverRequest{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunDriverRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunDriverRequest) ProtoMessage() {}

func (x *RunDriverRequest) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunDriverRequest.ProtoReflect.Descriptor instead.
func (*RunDriverRequest) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{11}
}

type RunDriverResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Passes        int32                  `protobuf:"varint,1,opt,name=passes,proto3" json:"passes,omitempty"`
	Transitions   int32                  `protobuf:"varint,2,opt,name=transitions,proto3" json:"transitions,omitempty"`
	TimedOut      int32                  `protobuf:"varint,3,opt,name=timed_out,json=timedOut,proto3" json:"timed_out,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunDriverResponse) Reset() {
	*x = RunDriverResponse{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunDriverResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunDriverResponse) ProtoMessage() {}

func (x *RunDriverResponse) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunDriverResponse.ProtoReflect.Descriptor instead.
func (*RunDriverResponse) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{12}
}

func (x *RunDriverResponse) GetPasses() int32 {
	if x != nil {
		return x.Passes
	}
	return 0
}

func (x *RunDriverResponse) GetTransitions() int32 {
	if x != nil {
		return x.Transitions
	}
	return 0
}

func (x *RunDriverResponse) GetTimedOut() int32 {
	if x != nil {
		return x.TimedOut
	}
	return 0
}

type CreateProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{13}
}

func (x *CreateProfileRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	CreditBalance int32                  `protobuf:"varint,2,opt,name=credit_balance,json=creditBalance,proto3" json:"credit_balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{14}
}

func (x *CreateProfileResponse) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *CreateProfileResponse) GetCreditBalance() int32 {
	if x != nil {
		return x.CreditBalance
	}
	return 0
}

type GetProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileRequest) Reset() {
	*x = GetProfileRequest{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileRequest) ProtoMessage() {}

func (x *GetProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileRequest.ProtoReflect.Descriptor instead.
func (*GetProfileRequest) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{15}
}

func (x *GetProfileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type GetProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	CreditBalance int32                  `protobuf:"varint,4,opt,name=credit_balance,json=creditBalance,proto3" json:"credit_balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileResponse) Reset() {
	*x = GetProfileResponse{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileResponse) ProtoMessage() {}

func (x *GetProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileResponse.ProtoReflect.Descriptor instead.
func (*GetProfileResponse) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{16}
}

func (x *GetProfileResponse) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *GetProfileResponse) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *GetProfileResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *GetProfileResponse) GetCreditBalance() int32 {
	if x != nil {
		return x.CreditBalance
	}
	return 0
}

type AddCreditsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Amount        int32                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCreditsRequest) Reset() {
	*x = AddCreditsRequest{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCreditsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCreditsRequest) ProtoMessage() {}

func (x *AddCreditsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCreditsRequest.ProtoReflect.Descriptor instead.
func (*AddCreditsRequest) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{17}
}

func (x *AddCreditsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *AddCreditsRequest) GetAmount() int32 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type AddCreditsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CreditBalance int32                  `protobuf:"varint,1,opt,name=credit_balance,json=creditBalance,proto3" json:"credit_balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCreditsResponse) Reset() {
	*x = AddCreditsResponse{}
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCreditsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCreditsResponse) ProtoMessage() {}

func (x *AddCreditsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_underwriter_v1_underwriter_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCreditsResponse.ProtoReflect.Descriptor instead.
func (*AddCreditsResponse) Descriptor() ([]byte, []int) {
	return file_underwriter_v1_underwriter_proto_rawDescGZIP(), []int{18}
}

func (x *AddCreditsResponse) GetCreditBalance() int32 {
	if x != nil {
		return x.CreditBalance
	}
	return 0
}

var File_underwriter_v1_underwriter_proto protoreflect.FileDescriptor

const file_underwriter_v1_underwriter_proto_rawDesc = "" +
	"\n" +
	" underwriter/v1/underwriter.proto\x12\x0eunderwriter.v1\"\x98\x01\n" +
	"\x10CreateJobRequest\x12\x1f\n" +
	"\vowner_email\x18\x01 \x01(\tR\n" +
	"ownerEmail\x12\x1d\n" +
	"\n" +
	"owner_name\x18\x02 \x01(\tR\townerName\x12\x1f\n" +
	"\vreport_type\x18\x03 \x01(\tR\n" +
	"reportType\x12#\n" +
	"\rproperty_name\x18\x04 \x01(\tR\fpropertyName\"]\n" +
	"\x11CreateJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\"d\n" +
	"\x15UploadDocumentRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"l\n" +
	"\x16UploadDocumentResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\x1d\n" +
	"\n" +
	"job_status\x18\x02 \x01(\tR\tjobStatus\x12\x1a\n" +
	"\brequeued\x18\x03 \x01(\bR\brequeued\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x94\x01\n" +
	"\aJobFile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x19\n" +
	"\bdoc_type\x18\x03 \x01(\tR\adocType\x12!\n" +
	"\fparse_status\x18\x04 \x01(\tR\vparseStatus\x12\x1f\n" +
	"\vparse_error\x18\x05 \x01(\tR\n" +
	"parseError\"\xff\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1f\n" +
	"\vreport_type\x18\x04 \x01(\tR\n" +
	"reportType\x12#\n" +
	"\rproperty_name\x18\x05 \x01(\tR\fpropertyName\x12\x1d\n" +
	"\n" +
	"error_code\x18\x06 \x01(\tR\terrorCode\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\t \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\n" +
	" \x01(\tR\vcompletedAt\x12\x1b\n" +
	"\tfailed_at\x18\v \x01(\tR\bfailedAt\x12-\n" +
	"\x05files\x18\f \x03(\v2\x17.underwriter.v1.JobFileR\x05files\"7\n" +
	"\x0eGetJobResponse\x12%\n" +
	"\x03job\x18\x01 \x01(\v2\x13.underwriter.v1.JobR\x03job\"A\n" +
	"\x14ListArtifactsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\"\x99\x01\n" +
	"\bArtifact\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12!\n" +
	"\fpayload_json\x18\x03 \x01(\tR\vpayloadJson\x12'\n" +
	"\x0fstorage_locator\x18\x04 \x01(\tR\x0estorageLocator\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"O\n" +
	"\x15ListArtifactsResponse\x126\n" +
	"\tartifacts\x18\x01 \x03(\v2\x18.underwriter.v1.ArtifactR\tartifacts\"\x12\n" +
	"\x10RunDriverRequest\"j\n" +
	"\x11RunDriverResponse\x12\x16\n" +
	"\x06passes\x18\x01 \x01(\x05R\x06passes\x12 \n" +
	"\vtransitions\x18\x02 \x01(\x05R\vtransitions\x12\x1b\n" +
	"\ttimed_out\x18\x03 \x01(\x05R\btimedOut\"@\n" +
	"\x14CreateProfileRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"]\n" +
	"\x15CreateProfileResponse\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12%\n" +
	"\x0ecredit_balance\x18\x02 \x01(\x05R\rcreditBalance\"2\n" +
	"\x11GetProfileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"\x84\x01\n" +
	"\x12GetProfileResponse\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12%\n" +
	"\x0ecredit_balance\x18\x04 \x01(\x05R\rcreditBalance\"J\n" +
	"\x11AddCreditsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x05R\x06amount\";\n" +
	"\x12AddCreditsResponse\x12%\n" +
	"\x0ecredit_balance\x18\x01 \x01(\x05R\rcreditBalance2\xb9\x03\n" +
	"\vJobsService\x12P\n" +
	"\tCreateJob\x12 .underwriter.v1.CreateJobRequest\x1a!.underwriter.v1.CreateJobResponse\x12_\n" +
	"\x0eUploadDocument\x12%.underwriter.v1.UploadDocumentRequest\x1a&.underwriter.v1.UploadDocumentResponse\x12G\n" +
	"\x06GetJob\x12\x1d.underwriter.v1.GetJobRequest\x1a\x1e.underwriter.v1.GetJobResponse\x12\\\n" +
	"\rListArtifacts\x12$.underwriter.v1.ListArtifactsRequest\x1a%.underwriter.v1.ListArtifactsResponse\x12P\n" +
	"\tRunDriver\x12 .underwriter.v1.RunDriverRequest\x1a!.underwriter.v1.RunDriverResponse2\x99\x02\n" +
	"\x0fProfilesService\x12\\\n" +
	"\rCreateProfile\x12$.underwriter.v1.CreateProfileRequest\x1a%.underwriter.v1.CreateProfileResponse\x12S\n" +
	"\n" +
	"GetProfile\x12!.underwriter.v1.GetProfileRequest\x1a\".underwriter.v1.GetProfileResponse\x12S\n" +
	"\n" +
	"AddCredits\x12!.underwriter.v1.AddCreditsRequest\x1a\".underwriter.v1.AddCreditsResponseB>Z<github.com/propscope/underwriter/gen/proto/underwriter/v1;v1b\x06proto3"

var (
	file_underwriter_v1_underwriter_proto_rawDescOnce sync.Once
	file_underwriter_v1_underwriter_proto_rawDescData []byte
)

func file_underwriter_v1_underwriter_proto_rawDescGZIP() []byte {
	file_underwriter_v1_underwriter_proto_rawDescOnce.Do(func() {
		file_underwriter_v1_underwriter_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_underwriter_v1_underwriter_proto_rawDesc), len(file_underwriter_v1_underwriter_proto_rawDesc)))
	})
	return file_underwriter_v1_underwriter_proto_rawDescData
}

var file_underwriter_v1_underwriter_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_underwriter_v1_underwriter_proto_goTypes = []any{
	(*CreateJobRequest)(nil),       // 0: underwriter.v1.CreateJobRequest
	(*CreateJobResponse)(nil),      // 1: underwriter.v1.CreateJobResponse
	(*UploadDocumentRequest)(nil),  // 2: underwriter.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil), // 3: underwriter.v1.UploadDocumentResponse
	(*GetJobRequest)(nil),          // 4: underwriter.v1.GetJobRequest
	(*JobFile)(nil),                // 5: underwriter.v1.JobFile
	(*Job)(nil),                    // 6: underwriter.v1.Job
	(*GetJobResponse)(nil),         // 7: underwriter.v1.GetJobResponse
	(*ListArtifactsRequest)(nil),   // 8: underwriter.v1.ListArtifactsRequest
	(*Artifact)(nil),               // 9: underwriter.v1.Artifact
	(*ListArtifactsResponse)(nil),  // 10: underwriter.v1.ListArtifactsResponse
	(*RunDriverRequest)(nil),       // 11: underwriter.v1.RunDriverRequest
	(*RunDriverResponse)(nil),      // 12: underwriter.v1.RunDriverResponse
	(*CreateProfileRequest)(nil),   // 13: underwriter.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),  // 14: underwriter.v1.CreateProfileResponse
	(*GetProfileRequest)(nil),      // 15: underwriter.v1.GetProfileRequest
	(*GetProfileResponse)(nil),     // 16: underwriter.v1.GetProfileResponse
	(*AddCreditsRequest)(nil),      // 17: underwriter.v1.AddCreditsRequest
	(*AddCreditsResponse)(nil),     // 18: underwriter.v1.AddCreditsResponse
}
var file_underwriter_v1_underwriter_proto_depIdxs = []int32{
	5,  // 0: underwriter.v1.Job.files:type_name -> underwriter.v1.JobFile
	6,  // 1: underwriter.v1.GetJobResponse.job:type_name -> underwriter.v1.Job
	9,  // 2: underwriter.v1.ListArtifactsResponse.artifacts:type_name -> underwriter.v1.Artifact
	0,  // 3: underwriter.v1.JobsService.CreateJob:input_type -> underwriter.v1.CreateJobRequest
	2,  // 4: underwriter.v1.JobsService.UploadDocument:input_type -> underwriter.v1.UploadDocumentRequest
	4,  // 5: underwriter.v1.JobsService.GetJob:input_type -> underwriter.v1.GetJobRequest
	8,  // 6: underwriter.v1.JobsService.ListArtifacts:input_type -> underwriter.v1.ListArtifactsRequest
	11, // 7: underwriter.v1.JobsService.RunDriver:input_type -> underwriter.v1.RunDriverRequest
	13, // 8: underwriter.v1.ProfilesService.CreateProfile:input_type -> underwriter.v1.CreateProfileRequest
	15, // 9: underwriter.v1.ProfilesService.GetProfile:input_type -> underwriter.v1.GetProfileRequest
	17, // 10: underwriter.v1.ProfilesService.AddCredits:input_type -> underwriter.v1.AddCreditsRequest
	1,  // 11: underwriter.v1.JobsService.CreateJob:output_type -> underwriter.v1.CreateJobResponse
	3,  // 12: underwriter.v1.JobsService.UploadDocument:output_type -> underwriter.v1.UploadDocumentResponse
	7,  // 13: underwriter.v1.JobsService.GetJob:output_type -> underwriter.v1.GetJobResponse
	10, // 14: underwriter.v1.JobsService.ListArtifacts:output_type -> underwriter.v1.ListArtifactsResponse
	12, // 15: underwriter.v1.JobsService.RunDriver:output_type -> underwriter.v1.RunDriverResponse
	14, // 16: underwriter.v1.ProfilesService.CreateProfile:output_type -> underwriter.v1.CreateProfileResponse
	16, // 17: underwriter.v1.ProfilesService.GetProfile:output_type -> underwriter.v1.GetProfileResponse
	18, // 18: underwriter.v1.ProfilesService.AddCredits:output_type -> underwriter.v1.AddCreditsResponse
	11, // [11:19] is the sub-list for method output_type
	3,  // [3:11] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_underwriter_v1_underwriter_proto_init() }
func file_underwriter_v1_underwriter_proto_init() {
	if File_underwriter_v1_underwriter_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_underwriter_v1_underwriter_proto_rawDesc), len(file_underwriter_v1_underwriter_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_underwriter_v1_underwriter_proto_goTypes,
		DependencyIndexes: file_underwriter_v1_underwriter_proto_depIdxs,
		MessageInfos:      file_underwriter_v1_underwriter_proto_msgTypes,
	}.Build()
	File_underwriter_v1_underwriter_proto = out.File
	file_underwriter_v1_underwriter_proto_goTypes = nil
	file_underwriter_v1_underwriter_proto_depIdxs = nil
}
