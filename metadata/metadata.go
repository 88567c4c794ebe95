package metadata

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// 支持的元数据版本号
// 版本号随 JSON 结构的演进而追加，旧版本永不修改
const (
	Version20210101 = "vox-20210101" // 初始版本: name / description / mimeType
	Version20210604 = "vox-20210604" // 追加 version 自描述字段与 image / external_url / attributes
)

// ErrUnsupportedVersion 版本号不在注册表中
var ErrUnsupportedVersion = errors.New("unsupported metadata version")

// Attribute 元数据的展示属性
type Attribute struct {
	TraitType string `json:"trait_type" validate:"required"`
	Value     string `json:"value" validate:"required"`
}

// Metadata 资产元数据文档
// 不同版本允许的字段集合不同，校验规则见各版本的 schema 函数
type Metadata struct {
	Version     string      `json:"version,omitempty"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description" validate:"required"`
	MimeType    string      `json:"mimeType" validate:"required"`
	Image       string      `json:"image,omitempty" validate:"omitempty,startswith=https://"`
	ExternalURL string      `json:"external_url,omitempty" validate:"omitempty,startswith=https://"`
	Attributes  []Attribute `json:"attributes,omitempty" validate:"omitempty,dive"`
}

var validate = validator.New()

// schemas 版本号 -> 校验函数的注册表
// 显式注册而非全局扫描，新增版本时在这里追加
var schemas = map[string]func(*Metadata) error{
	Version20210101: validate20210101,
	Version20210604: validate20210604,
}

// validate20210101 初始版本只允许三个必填字段
func validate20210101(m *Metadata) error {
	if err := validate.Struct(m); err != nil {
		return err
	}
	if m.Version != "" || m.Image != "" || m.ExternalURL != "" || len(m.Attributes) > 0 {
		return errors.New("fields not defined by version vox-20210101 are present")
	}
	return nil
}

// validate20210604 文档必须自带与外部声明一致的 version 字段
func validate20210604(m *Metadata) error {
	if err := validate.Struct(m); err != nil {
		return err
	}
	if m.Version != Version20210604 {
		return errors.Errorf("document version %q does not match %s", m.Version, Version20210604)
	}
	return nil
}

// Generate 按指定版本校验元数据并序列化为 JSON 字符串
// 相同输入的输出是确定的 (字段顺序由结构体定义固定)
func Generate(version string, m *Metadata) (string, error) {
	schema, ok := schemas[version]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedVersion, "version: %s", version)
	}
	if err := schema(m); err != nil {
		return "", errors.Wrap(err, "metadata does not conform to schema")
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", errors.Wrap(err, "failed on marshal metadata")
	}
	return string(raw), nil
}

// Parse 按指定版本解析并校验 JSON 元数据
func Parse(version string, raw []byte) (*Metadata, error) {
	schema, ok := schemas[version]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version: %s", version)
	}
	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "failed on unmarshal metadata")
	}
	if err := schema(&m); err != nil {
		return nil, errors.Wrap(err, "metadata does not conform to schema")
	}
	return &m, nil
}

// Validate 判断 JSON 元数据是否符合指定版本的 schema
// 未注册的版本号返回 ErrUnsupportedVersion，文档不合规则返回 (false, nil)
func Validate(version string, raw []byte) (bool, error) {
	if _, ok := schemas[version]; !ok {
		return false, errors.Wrapf(ErrUnsupportedVersion, "version: %s", version)
	}
	if _, err := Parse(version, raw); err != nil {
		return false, nil
	}
	return true, nil
}
