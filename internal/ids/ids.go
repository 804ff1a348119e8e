// Package ids centralizes the chunk type tags, class IDs and super class
// IDs named throughout the spec, so the resolver and extractors share one
// vocabulary instead of scattering magic numbers across packages.
package ids

// Chunk property tags (selected, little-endian; see the glossary).
const (
	TagDescriptorText    uint16 = 0x0120 // human-readable primitive/mesh text
	TagParentIndex       uint16 = 0x0960 // parent scene-index
	TagNodeName          uint16 = 0x0962 // UTF-16 node name
	TagObjectRefContainer uint16 = 0x2032 // object-space modifier container
	TagLinkPositional    uint16 = 0x2034 // positional link table
	TagLinkPairs         uint16 = 0x2035 // (slot,target) link pairs
	TagClassName         uint16 = 0x2042 // UTF-16 class name
	TagClassData         uint16 = 0x2060 // (dllIndex, classID, superClassID)
	TagDllFile           uint16 = 0x2037 // UTF-16 dll file name
	TagDllName           uint16 = 0x2039 // UTF-16 dll display name
	TagModifierData      uint16 = 0x2500 // per-modifier object-instance data
	TagAttributeData     uint16 = 0x2512 // per-attribute data (modifiers)
	TagValueContainer    uint16 = 0x7127 // value container wrapping a float leaf

	TagFloat2501 uint16 = 0x2501
	TagFloat2503 uint16 = 0x2503
	TagFloat2504 uint16 = 0x2504
	TagFloat2505 uint16 = 0x2505

	TagPolyPayload      uint16 = 0x08FE // editable-poly payload
	TagPolyVertices     uint16 = 0x0100 // vertices (poly) / typed value (v1 param block)
	TagModifierTriples  uint16 = 0x0110 // face/vertex triples emitted by modifiers
	TagPolyVertexFaces  uint16 = 0x011A // vertex face array
	TagPolyTexCoords    uint16 = 0x0128 // texture coordinates
	TagPolyTextureFaces uint16 = 0x012B // texture face array

	TagParamBlockCount uint16 = 0x0001 // v1 param block: element count
	TagParamBlockItemV1 uint16 = 0x0002 // v1 param block: one typed value
	TagParamItemFloat   uint16 = 0x0100
	TagParamItemInt     uint16 = 0x0101
	TagParamItemRGBA    uint16 = 0x0102
	TagParamItemPoint3  uint16 = 0x0103
	TagParamItemBool    uint16 = 0x0104

	TagParamBlockItemV2a uint16 = 0x000E // v2 param block entry
	TagParamBlockItemV2b uint16 = 0x100E // v2 param block entry, alternate tag

	TagEditNormalsBlock uint16 = 0x2512
	TagNormalsA         uint16 = 0x0240
	TagNormalsB         uint16 = 0x0250
)

// Super class IDs categorize a class instance: node, controller, geometry,
// modifier, param-block layout...
const (
	SuperClassBaseNode    uint32 = 0x0001
	SuperClassGeomObject  uint32 = 0x0010
	SuperClassOSModifier  uint32 = 0x0810
	SuperClassPRSControl  uint32 = 0x9008
	SuperClassPosControl  uint32 = 0x900B
	SuperClassRotControl  uint32 = 0x900C
	SuperClassScaleControl uint32 = 0x900D
	SuperClassParamBlockV1 uint32 = 0x0008
	SuperClassParamBlockV2 uint32 = 0x0082
)

// ClassID is a 64-bit identity expressed as two 32-bit halves, matching
// the chunk.ClassData.ClassID representation.
type ClassID [2]uint32

// PRS controller.
var ClassPRSControl = ClassID{0x00002005, 0x00000000}

// Position controllers.
var (
	ClassIPosControl             = ClassID{0x118F7E02, 0xFFEE238A}
	ClassLinInterpPosition       = ClassID{0x00002002, 0x00000000}
	ClassHybridInterpPosition    = ClassID{0x00002008, 0x00000000}
	ClassTCBInterpPosition       = ClassID{0x00442312, 0x00000000}
)

// Rotation controllers.
var (
	ClassHybridInterpPoint4 = ClassID{0x00002012, 0x00000000} // Euler XYZ
	ClassLinInterpRotation  = ClassID{0x00002003, 0x00000000}
	ClassTCBInterpRotation  = ClassID{0x00442313, 0x00000000}
)

// Scale controllers.
var (
	ClassLinInterpScale    = ClassID{0x00002004, 0x00000000}
	ClassHybridInterpScale = ClassID{0x00002010, 0x00000000}
	ClassTCBInterpScale    = ClassID{0x00442315, 0x00000000}
)

// HYBRIDINTERP_FLOAT, used as the position sub-controller under IPOS_CONTROL.
var ClassHybridInterpFloat = ClassID{0x00002007, 0x00000000}

const SuperClassHybridInterpFloat uint32 = 0x9003

// Geometry object class IDs.
var (
	ClassBox       = ClassID{0x00000010, 0x00000000}
	ClassSphere    = ClassID{0x00000011, 0x00000000}
	ClassCylinder  = ClassID{0x00000012, 0x00000000}
	ClassTorus     = ClassID{0x00000020, 0x00000000}
	ClassCone      = ClassID{0xA86C23DD, 0x00000000}
	ClassGeoSphere = ClassID{0x00000000, 0x00007F9E}
	ClassTube      = ClassID{0x00007B21, 0x00000000}
	ClassPyramid   = ClassID{0x76BF318A, 0x4BF37B10}
	ClassPlane     = ClassID{0x081F1DFC, 0x77566F65}
	ClassEditPoly  = ClassID{0x1BF8338D, 0x192F6098}
)

// Object-space modifier class IDs.
var (
	ClassEditNormals   = ClassID{0x4AA52AE3, 0x35CA1CDE}
	ClassPaintLayerMod = ClassID{0x7EBB4645, 0x7BE2044B}
)

// Scene-root chunk types recognized across .max file versions (see §4.3).
// Any other type >= 0x2000 is accepted forward-compatibly; types below
// 0x2000 are rejected.
var SupportedSceneRootTypes = map[uint16]bool{
	0x200E: true,
	0x200F: true,
	0x2012: true,
	0x2020: true,
	0x2023: true,
}

// MinSceneRootType is the lowest chunk type ever accepted as a scene root.
const MinSceneRootType uint16 = 0x2000
