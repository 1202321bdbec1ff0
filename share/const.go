package share

// VERSION 版本号
const VERSION = "0.3.0"

// BUILDNAME 制品名称
const BUILDNAME = "scriptmenu"

const PREFIX = "SCRIPTMENU_"

const PATH = ".scriptmenu"

const DEFAULT_RENDERER = "text"

const DEFAULT_LANG = "en"

// MANIFEST_FILE 脚本目录下的元数据覆盖文件
const MANIFEST_FILE = "scriptmenu.yaml"

// ALIAS_STORE 持久化别名表使用的 JSON 文件名
const ALIAS_STORE = "aliases"
