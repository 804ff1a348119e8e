// Package classdir resolves a scene chunk's raw type tag to the class name,
// class/super class IDs and owning DLL recorded in the companion
// ClassDirectory and DllDirectory streams.
//
// A Scene stream's top-level chunks carry no class information of their
// own: the chunk's Type field is an index into ClassDirectory (not a tag
// drawn from a fixed vocabulary), and ClassDirectory in turn names the DLL
// that implements the class by index into DllDirectory. Both directories
// are themselves parsed chunk trees, decoded once up front and then
// consulted by index for every scene chunk.
package classdir

import (
	"fmt"

	"github.com/mbundle/maxscene/internal/chunk"
	"github.com/mbundle/maxscene/internal/ids"
	"github.com/mbundle/maxscene/internal/strcoder"
)

// GetClass resolves classIndex (a scene chunk's raw Type) against the
// parsed ClassDirectory stream's top-level siblings. It returns ok=false
// if the index is out of range or the entry carries no class data chunk.
func GetClass(classDirectory []*chunk.Chunk, classIndex uint16) (name string, data chunk.ClassData, ok bool) {
	if int(classIndex) >= len(classDirectory) {
		return "", chunk.ClassData{}, false
	}
	entry := classDirectory[classIndex]

	classData := chunk.ClassDataProp(entry, ids.TagClassData)
	if len(classData) == 0 {
		return "", chunk.ClassData{}, false
	}

	className := chunk.U16(entry, ids.TagClassName)
	if len(className) == 0 {
		return "(Unnamed)", classData[0], true
	}
	return strcoder.FromUTF16(className), classData[0], true
}

// GetDll resolves dllIndex against the parsed DllDirectory stream's
// top-level siblings. dllIndex of 0xFFFFFFFF names the host application
// itself rather than a loadable plugin.
func GetDll(dllDirectory []*chunk.Chunk, dllIndex uint32) (file, name string) {
	if dllIndex == 0xFFFFFFFF {
		return "(Internal)", "(Internal)"
	}
	if int(dllIndex) >= len(dllDirectory) {
		return "(Unknown)", "(Unknown)"
	}
	entry := dllDirectory[dllIndex]

	dllFile := chunk.U16(entry, ids.TagDllFile)
	dllName := chunk.U16(entry, ids.TagDllName)
	if len(dllFile) == 0 || len(dllName) == 0 {
		return "(Unknown)", "(Unknown)"
	}
	return strcoder.FromUTF16(dllFile), strcoder.FromUTF16(dllName)
}

// SceneRootSupported reports whether a Scene stream's root chunk type is a
// version this decoder recognizes. Types below MinSceneRootType predate
// every supported release; types at or above it, even if not explicitly
// named, are accepted forward-compatibly since newer 3ds Max releases have
// so far only ever added to the format, never broken it.
func SceneRootSupported(rootType uint16) bool {
	if ids.SupportedSceneRootTypes[rootType] {
		return true
	}
	return rootType >= ids.MinSceneRootType
}

// Decorate resolves and attaches class/DLL identity to every top-level
// chunk in sceneChunks, in place. A chunk whose type has no ClassDirectory
// entry is left undecorated (ClassName stays empty) and reported via warn,
// except for type 0x2032 (an object-space modifier container), which is a
// legitimate, self-describing chunk with no class entry of its own.
func Decorate(sceneChunks []*chunk.Chunk, classDirectory, dllDirectory []*chunk.Chunk, warn func(format string, args ...any)) {
	for i, c := range sceneChunks {
		className, classData, ok := GetClass(classDirectory, c.Type)
		if !ok {
			if c.Type != ids.TagObjectRefContainer {
				warn("Class %04X is not found! (Chunk:%X)", c.Type, i)
			}
			continue
		}
		dllFile, dllName := GetDll(dllDirectory, classData.DllIndex)
		c.ClassName = className
		c.ClassData = classData
		c.ClassDllFile = dllFile
		c.ClassDllName = dllName
	}
}

// CheckClass reports whether c was decorated with exactly the expected
// class and super class ID, logging a diagnostic naming its actual
// identity otherwise.
func CheckClass(c *chunk.Chunk, classID ids.ClassID, superClassID uint32, warn func(format string, args ...any)) bool {
	if c.ClassData.ClassID == [2]uint32(classID) && c.ClassData.SuperClassID == superClassID {
		return true
	}
	warn("Unknown (%08X-%08X-%08X-%08X) %s",
		c.ClassData.DllIndex, c.ClassData.ClassID[0], c.ClassData.ClassID[1], c.ClassData.SuperClassID, name(c))
	return false
}

func name(c *chunk.Chunk) string {
	if c.ClassName != "" {
		return c.ClassName
	}
	return fmt.Sprintf("%04X", c.Type)
}
